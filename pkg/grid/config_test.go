package grid

import (
	"slices"
	"testing"

	"github.com/matzehuels/gridster/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero columns", mutate: func(c *Config) { c.Columns = 0 }, wantErr: true},
		{name: "zero max rows", mutate: func(c *Config) { c.MaxRows = 0 }, wantErr: true},
		{name: "negative min rows", mutate: func(c *Config) { c.MinRows = -1 }, wantErr: true},
		{name: "min rows above max rows", mutate: func(c *Config) { c.MinRows = c.MaxRows + 1 }, wantErr: true},
		{name: "zero default size", mutate: func(c *Config) { c.DefaultSizeY = 0 }, wantErr: true},
		{name: "single row grid", mutate: func(c *Config) { c.MaxRows, c.MinRows = 1, 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Validate() code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()

	got := base.Merge(Overrides{
		Columns:      Int(8),
		Floating:     Bool(false),
		RowHeight:    String("*2"),
		InvalidSizes: &InvalidSizes{Width: []int{5}},
	})

	if got.Columns != 8 || got.Floating || got.RowHeight != "*2" {
		t.Errorf("Merge() did not apply overrides: %+v", got)
	}
	if !slices.Equal(got.InvalidSizes.Width, []int{5}) {
		t.Errorf("InvalidSizes.Width = %v, want [5]", got.InvalidSizes.Width)
	}
	if got.MaxRows != DefaultMaxRows || !got.Pushing {
		t.Error("Merge() changed fields without overrides")
	}

	got.Margins[0] = 99
	if base.Margins[0] != DefaultMargin {
		t.Error("Merge() result shares margins with the base")
	}
	if base.Columns != DefaultColumns || !base.Floating {
		t.Error("Merge() modified the base")
	}
}

func TestConfigMergeMargins(t *testing.T) {
	tests := []struct {
		name    string
		margins []int
		want    []int
	}{
		{name: "not set", margins: nil, want: []int{DefaultMargin, DefaultMargin}},
		{name: "two values", margins: []int{4, 8}, want: []int{4, 8}},
		{name: "one value", margins: []int{4}, want: []int{0, 0}},
		{name: "three values", margins: []int{1, 2, 3}, want: []int{0, 0}},
		{name: "empty", margins: []int{}, want: []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultConfig().Merge(Overrides{Margins: tt.margins})
			if !slices.Equal(got.Margins, tt.want) {
				t.Errorf("Margins = %v, want %v", got.Margins, tt.want)
			}
		})
	}
}

func TestEngineConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	cfg.Margins[0] = 42
	cfg.Columns = 2

	got := e.Config()
	if got.Margins[0] != DefaultMargin || got.Columns != DefaultColumns {
		t.Errorf("engine config changed with the caller's copy: %+v", got)
	}
}
