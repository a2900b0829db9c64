package css

import "strings"

type imageForm uint8

const (
	imageNone imageForm = iota
	imageURL
	imageIconTheme
	imageCrossFade
)

// Image is an image reference: none, url(…), a themed icon or a
// cross-fade between two images.
type Image struct {
	refcount
	form     imageForm
	ref      string // url or icon name
	progress float64
	start    Value
	end      Value
}

var noneImage = &Image{refcount: static(), form: imageNone}

// NoneImage returns the singleton 'none' image.
func NoneImage() *Image { return noneImage }

// NewImageURL creates url(…).
func NewImageURL(url string) *Image {
	return &Image{refcount: alive(), form: imageURL, ref: url}
}

// NewIconThemeImage creates -ctk-icontheme(…), an icon looked up by name.
func NewIconThemeImage(name string) *Image {
	return &Image{refcount: alive(), form: imageIconTheme, ref: name}
}

// NewCrossFade creates cross-fade(progress, start, end). It takes over the
// references to start and end.
func NewCrossFade(progress float64, start, end Value) *Image {
	assertThat(start != nil && start.Kind() == KindImage, "cross-fade start must be an image")
	assertThat(end != nil && end.Kind() == KindImage, "cross-fade end must be an image")
	return &Image{refcount: alive(), form: imageCrossFade, progress: clamp01(progress),
		start: start, end: end}
}

// Kind is part of interface Value.
func (img *Image) Kind() Kind { return KindImage }

// IsNone is true for the 'none' image.
func (img *Image) IsNone() bool { return img.form == imageNone }

// URL returns the url of an url(…) image.
func (img *Image) URL() (string, bool) {
	return img.ref, img.form == imageURL
}

func (img *Image) String() string {
	switch img.form {
	case imageURL:
		return "url(" + quoteString(img.ref) + ")"
	case imageIconTheme:
		return "-ctk-icontheme(" + quoteString(img.ref) + ")"
	case imageCrossFade:
		var b strings.Builder
		b.WriteString("cross-fade(")
		b.WriteString(formatFloat(img.progress * 100))
		b.WriteString("%, ")
		b.WriteString(img.start.String())
		b.WriteString(", ")
		b.WriteString(img.end.String())
		b.WriteByte(')')
		return b.String()
	}
	return "none"
}

func (img *Image) release() {
	Unref(img.start)
	Unref(img.end)
	img.start, img.end = nil, nil
}

func (img *Image) equal(other Value) bool {
	o := other.(*Image)
	if img.form != o.form {
		return false
	}
	switch img.form {
	case imageURL, imageIconTheme:
		return img.ref == o.ref
	case imageCrossFade:
		return img.progress == o.progress && Equal(img.start, o.start) && Equal(img.end, o.end)
	}
	return true
}

func (img *Image) compute(id PropertyID, ctx *computeContext) Value {
	if img.form != imageCrossFade {
		return Ref(img)
	}
	s := img.start.compute(id, ctx)
	e := img.end.compute(id, ctx)
	if s == img.start && e == img.end {
		Unref(s)
		Unref(e)
		return Ref(img)
	}
	return NewCrossFade(img.progress, s, e)
}

// transition cross-fades between two images. At the endpoints the
// original images are returned.
func (img *Image) transition(end Value, id PropertyID, progress float64) Value {
	if progress <= 0 {
		return Ref(img)
	} else if progress >= 1 {
		return Ref(end)
	}
	if Equal(img, end) {
		return Ref(img)
	}
	return NewCrossFade(progress, Ref(img), Ref(end))
}
