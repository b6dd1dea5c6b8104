package winquery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner maps a space-joined argv to canned output or an error.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) Output(_ context.Context, argv []string) (string, error) {
	key := strings.Join(argv, " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return "", err
	}
	out, ok := f.outputs[key]
	if !ok {
		return "", errors.New("unexpected command: " + key)
	}
	return out, nil
}

func TestActiveWindowID(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"xdotool getactivewindow": "73400323",
	}}

	id, err := ActiveWindowID(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, "73400323", id)
}

func TestWindowClass_ParsesQuotedStrings(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		`xprop -id 7 WM_CLASS`: `WM_CLASS(STRING) = "org.gnome.Nautilus", "Org.gnome.Nautilus"`,
	}}

	classes, err := WindowClass(context.Background(), r, "7")

	require.NoError(t, err)
	assert.Equal(t, []string{"org.gnome.nautilus", "org.gnome.nautilus"}, classes)
}

func TestSearchWindowsByClass_SplitsLines(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"xdotool search --class nautilus": "100\n101\n\n102",
	}}

	ids, err := SearchWindowsByClass(context.Background(), r, "nautilus")

	require.NoError(t, err)
	assert.Equal(t, []string{"100", "101", "102"}, ids)
}

func TestIsFileManagerFocused(t *testing.T) {
	tests := []struct {
		name    string
		focused string
		windows string
		want    bool
	}{
		{"focused is nautilus", "101", "100\n101", true},
		{"focused is another app", "999", "100\n101", false},
		{"no nautilus windows", "999", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{outputs: map[string]string{
				"xdotool search --class nautilus": tt.windows,
				"xdotool getactivewindow":         tt.focused,
			}}

			got, err := IsFileManagerFocused(context.Background(), r)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsFileManagerFocused_NoWindows_SkipsFocusQuery(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"xdotool search --class nautilus": "",
	}}

	got, err := IsFileManagerFocused(context.Background(), r)

	require.NoError(t, err)
	assert.False(t, got)
	assert.Equal(t, []string{"xdotool search --class nautilus"}, r.calls)
}

func TestIsFileManagerFocused_ToolFailure(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{
		"xdotool search --class nautilus": errors.New("xdotool: not found"),
	}}

	_, err := IsFileManagerFocused(context.Background(), r)

	assert.Error(t, err)
}

func TestParseFileURI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			"gdbus variant reply",
			`(<'file:///home/user/Documents'>,)`,
			"/home/user/Documents",
			true,
		},
		{
			"percent encoded",
			`(<'file:///home/user/My%20Projects'>,)`,
			"/home/user/My Projects",
			true,
		},
		{"double quoted", `"file:///tmp/work"`, "/tmp/work", true},
		{"no uri", `(<uint32 4>,)`, "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFileURI(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPaths(t *testing.T) {
	out := `WM_NAME(STRING) = "/home/user/projects"
_NET_WM_NAME(UTF8_STRING) = "file:///home/user/projects"`

	paths := ExtractPaths(out)

	assert.Equal(t, []string{"/home/user/projects"}, paths)
}

func TestExtractPaths_Nothing(t *testing.T) {
	assert.Empty(t, ExtractPaths(`WM_NAME(STRING) = "Documents"`))
}
