package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/npillmayer/csscascade/cascade"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by all validation errors returned from Load and Parse.
var ErrInvalid = errors.New("invalid configuration")

// File is the content of a configuration file.
type File struct {
	Tracing   Tracing           `yaml:"tracing"`
	Scale     int               `yaml:"scale" validate:"min=0,max=16"`
	Providers []ProviderEntry   `yaml:"providers" validate:"dive"`
	Settings  map[string]string `yaml:"settings"`
	dir       string
}

// Tracing configures the trace adapter, its destination and trace levels
// per tracer key. Key "root" sets the level of the root tracer.
type Tracing struct {
	Adapter     string            `yaml:"adapter" validate:"omitempty,oneof=go nop"`
	Destination string            `yaml:"destination"`
	Levels      map[string]string `yaml:"levels" validate:"dive,keys,required,endkeys,tracelevel"`
}

// ProviderEntry names a style sheet to load into a cascade.
type ProviderEntry struct {
	File     string `yaml:"file" validate:"required"`
	Priority int    `yaml:"priority" validate:"priority"`
	Name     string `yaml:"name"`
}

// Label returns the name of the entry, defaulting to the file's base name.
func (e ProviderEntry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return filepath.Base(e.File)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
			p := fl.Field().Int()
			return p >= cascade.PriorityFallback && p <= cascade.PriorityUser
		})
		_ = v.RegisterValidation("tracelevel", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(fl.Field().String()) {
			case "debug", "info", "error":
				return true
			}
			return false
		})
		validateInst = v
	})
	return validateInst
}

// Load reads and validates a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.dir = filepath.Dir(path)
	tracer().Infof("configuration loaded from %s", path)
	return f, nil
}

// Parse decodes and validates YAML configuration data. Relative provider
// files of the result are resolved against the current directory.
func Parse(data []byte) (*File, error) {
	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks f against its validation rules.
func (f *File) Validate() error {
	err := validatorInstance().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s: failed on '%s'", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// ScaleFactor returns the configured scale, which defaults to 1.
func (f *File) ScaleFactor() int {
	if f.Scale <= 0 {
		return 1
	}
	return f.Scale
}

// ProviderPath returns the file of a provider entry, resolved against the
// directory of the configuration file.
func (f *File) ProviderPath(e ProviderEntry) string {
	if filepath.IsAbs(e.File) || f.dir == "" {
		return e.File
	}
	return filepath.Join(f.dir, e.File)
}

// Configuration returns f as a flat key/value configuration. Tracing
// entries live under "tracing.adapter", "tracing.destination" and
// "tracelevel.<key>", settings under their own names.
func (f *File) Configuration() Values {
	vals := make(Values, len(f.Settings)+len(f.Tracing.Levels)+3)
	for k, v := range f.Settings {
		vals[k] = v
	}
	adapter := f.Tracing.Adapter
	if adapter == "" {
		adapter = "go"
	}
	vals["tracing.adapter"] = adapter
	if f.Tracing.Destination != "" {
		vals["tracing.destination"] = f.Tracing.Destination
	}
	for k, level := range f.Tracing.Levels {
		vals[levelPrefix+"."+k] = level
	}
	vals["scale"] = strconv.Itoa(f.ScaleFactor())
	return vals
}

// --- Values ----------------------------------------------------------------

// Values is a flat map of configuration keys to textual values. It
// implements schuko.Configuration.
type Values map[string]string

// InitDefaults does nothing.
func (v Values) InitDefaults() {}

// IsSet is true if key is present.
func (v Values) IsSet(key string) bool {
	_, ok := v[key]
	return ok
}

// GetString returns the value for key, or "".
func (v Values) GetString(key string) string {
	return v[key]
}

// GetInt returns the value for key as an integer, or 0.
func (v Values) GetInt(key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v[key]))
	if err != nil {
		return 0
	}
	return n
}

// GetBool returns the value for key as a boolean, or false.
func (v Values) GetBool(key string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v[key]))
	return err == nil && b
}

// IsInteractive is always false.
func (v Values) IsInteractive() bool { return false }

// Keys returns the keys of v in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
