package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newCapturedPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewWithOptions(&out, &errOut, ColorNever), &out, &errOut
}

func TestNew(t *testing.T) {
	p := New()
	assert.NotNil(t, p)
	assert.Equal(t, os.Stdout, p.output)
	assert.Equal(t, os.Stderr, p.errorOutput)
	assert.False(t, p.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name         string
		noColor      string
		mdvaultColor string
		expected     ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"MDVAULT_COLOR always", "", "always", ColorAlways},
		{"MDVAULT_COLOR force", "", "force", ColorAlways},
		{"MDVAULT_COLOR never", "", "never", ColorNever},
		{"MDVAULT_COLOR off", "", "off", ColorNever},
		{"default", "", "", ColorAuto},
		{"invalid value", "", "bogus", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("MDVAULT_COLOR", tt.mdvaultColor)
			if tt.noColor == "" {
				os.Unsetenv("NO_COLOR")
			}
			if tt.mdvaultColor == "" {
				os.Unsetenv("MDVAULT_COLOR")
			}

			assert.Equal(t, tt.expected, detectColorMode())
		})
	}
}

func TestErrorOutput(t *testing.T) {
	p, out, errOut := newCapturedPresenter()

	p.Error(errors.New("boom"), "processing file")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR] processing file: boom")
}

func TestErrorWithoutContext(t *testing.T) {
	p, _, errOut := newCapturedPresenter()
	p.Error(errors.New("boom"), "")
	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestErrorNil(t *testing.T) {
	p, _, errOut := newCapturedPresenter()
	p.Error(nil, "context")
	assert.Empty(t, errOut.String())
}

func TestMessages(t *testing.T) {
	p, out, _ := newCapturedPresenter()

	p.Success("done")
	p.Warning("careful")
	p.Info("fyi")
	p.Section("Results")
	p.Separator()

	s := out.String()
	assert.Contains(t, s, "✓ done")
	assert.Contains(t, s, "⚠ careful")
	assert.Contains(t, s, "fyi")
	assert.Contains(t, s, "Results\n-------")
}

func TestQuietSuppressesAllButErrors(t *testing.T) {
	p, out, errOut := newCapturedPresenter()
	p.SetQuiet(true)

	p.Success("done")
	p.Warning("careful")
	p.Info("fyi")
	p.Section("x")
	p.Separator()
	p.Error(errors.New("boom"), "")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
	assert.True(t, p.IsQuiet())
}

func TestParseColorMode(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("MDVAULT_COLOR", "")
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("MDVAULT_COLOR")

	tests := []struct {
		value   string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"", ColorAuto, false},
		{"always", ColorAlways, false},
		{"force", ColorAlways, false},
		{"never", ColorNever, false},
		{"off", ColorNever, false},
		{"rainbow", ColorAuto, true},
	}

	for _, tt := range tests {
		mode, err := ParseColorMode(tt.value)
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
			continue
		}
		assert.NoError(t, err, "value %q", tt.value)
		assert.Equal(t, tt.want, mode, "value %q", tt.value)
	}
}

func TestParseColorModeAutoHonorsEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	mode, err := ParseColorMode("auto")
	assert.NoError(t, err)
	assert.Equal(t, ColorNever, mode)
}

func TestSetColorMode(t *testing.T) {
	original := color.NoColor
	defer func() {
		color.NoColor = original
		SetColorMode(ColorAuto)
	}()

	SetColorMode(ColorAlways)
	assert.False(t, color.NoColor)

	SetColorMode(ColorNever)
	assert.True(t, color.NoColor)
}

func TestColorModeConfiguration(t *testing.T) {
	original := color.NoColor
	defer func() { color.NoColor = original }()

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorAlways)
	assert.False(t, color.NoColor)

	NewWithOptions(&bytes.Buffer{}, &bytes.Buffer{}, ColorNever)
	assert.True(t, color.NoColor)
}
