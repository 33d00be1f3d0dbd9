package template

import (
	"errors"
	"testing"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Textbox(t *testing.T) {
	w, err := Decode("layout", map[string]any{
		"textbox": []any{
			"[",
			map[string]any{"field": "current_elapsed"},
			map[string]any{"styled": []any{"bold", map[string]any{"fg": "red"}}, "content": "!"},
		},
		"align": "right",
	})
	require.NoError(t, err)

	want := &Textbox{
		Align: AlignRight,
		Content: Parts{
			Text("["),
			CurrentElapsed,
			&Styled{Mods: []StyleMod{Add(Bold), Fg(Indexed(1))}, Content: Text("!")},
		},
	}
	assert.Equal(t, want, w)
}

func TestDecode_Conditions(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Condition
	}{
		{"predicate", "oneshot", Oneshot},
		{"not", map[string]any{"not": "stopped"}, &Not{Cond: Stopped}},
		{
			name: "and folds left",
			in:   map[string]any{"and": []any{"repeat", "random", "consume"}},
			want: &And{Left: &And{Left: Repeat, Right: Random}, Right: Consume},
		},
		{
			name: "nested xor",
			in:   map[string]any{"xor": []any{"single", map[string]any{"or": []any{"paused", "playing"}}}},
			want: &Xor{Left: Single, Right: &Or{Left: Paused, Right: Playing}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeCondition("c", tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_StyleMods(t *testing.T) {
	mods, err := decodeMods("style", []any{
		"italic",
		"no_bold",
		map[string]any{"bg": 75},
		map[string]any{"fg": "#ff8000"},
		map[string]any{"fg": "reset"},
	})
	require.NoError(t, err)

	assert.Equal(t, []StyleMod{
		Add(Italic),
		Remove(Bold),
		Bg(Indexed(75)),
		Fg(RGB(0xff, 0x80, 0x00)),
		Fg(Color{Kind: ColorReset}),
	}, mods)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		wantPath string
	}{
		{
			name:     "unknown widget",
			in:       map[string]any{"panel": 1},
			wantPath: "layout",
		},
		{
			name: "unknown field in queue column",
			in: map[string]any{"rows": []any{
				map[string]any{"fixed": 1, "widget": map[string]any{"textbox": "x"}},
				map[string]any{"min": 0, "widget": map[string]any{"queue": []any{
					map[string]any{"ratio": 1, "item": map[string]any{"field": "queue_genre"}},
				}}},
			}},
			wantPath: "layout.rows[1].widget.queue[0].item.field",
		},
		{
			name: "two sizes",
			in: map[string]any{"columns": []any{
				map[string]any{"fixed": 1, "ratio": 2, "widget": map[string]any{"textbox": "x"}},
			}},
			wantPath: "layout.columns[0]",
		},
		{
			name: "negative size",
			in: map[string]any{"columns": []any{
				map[string]any{"max": -3, "widget": map[string]any{"textbox": "x"}},
			}},
			wantPath: "layout.columns[0].max",
		},
		{
			name:     "bad color",
			in:       map[string]any{"textbox": map[string]any{"styled": []any{map[string]any{"fg": 300}}, "content": "x"}},
			wantPath: "layout.textbox.styled[0].fg",
		},
		{
			name:     "bad background",
			in:       map[string]any{"queue": []any{map[string]any{"ratio": 1, "item": "x", "style": []any{"bold", map[string]any{"bg": "mauve"}}}}},
			wantPath: "layout.queue[0].style[1].bg",
		},
		{
			name:     "fractional size",
			in:       map[string]any{"rows": []any{map[string]any{"fixed": 1.5, "widget": map[string]any{"textbox": "x"}}}},
			wantPath: "layout.rows[0].fixed",
		},
		{
			name:     "unknown alignment",
			in:       map[string]any{"textbox": "x", "align": "middle"},
			wantPath: "layout.align",
		},
		{
			name:     "condition is not a name",
			in:       map[string]any{"textbox": map[string]any{"if": map[string]any{"not": 3}, "then": "x"}},
			wantPath: "layout.textbox.if.not",
		},
		{
			name:     "empty field",
			in:       map[string]any{"textbox": map[string]any{"field": nil}},
			wantPath: "layout.textbox.field",
		},
		{
			name:     "if without then",
			in:       map[string]any{"textbox": map[string]any{"if": "repeat"}},
			wantPath: "layout.textbox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("layout", tt.in)
			require.Error(t, err)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "error %v is not a DecodeError", err)
			assert.Equal(t, tt.wantPath, de.Path)
		})
	}
}

func TestDecode_TOML(t *testing.T) {
	doc := `
[[layout.rows]]
fixed = 1
widget = { textbox = "header" }

[[layout.rows]]
min = 0

[layout.rows.widget]

[[layout.rows.widget.queue]]
ratio = 3
item = { if = "queue_current", then = { styled = ["italic"], content = { field = "queue_title" } }, else = { field = "queue_title" } }
style = [{ fg = 75 }]
selected_style = [{ fg = "black" }, { bg = 75 }, "bold"]
`
	m, err := toml.Parser().Unmarshal([]byte(doc))
	require.NoError(t, err)

	w, err := Decode("layout", m["layout"])
	require.NoError(t, err)

	rows, ok := w.(*Rows)
	require.True(t, ok)
	require.Len(t, rows.Children, 2)
	assert.Equal(t, Constrained[Widget]{Sizing: Fixed, N: 1, Value: &Textbox{Content: Text("header")}}, rows.Children[0])

	q, ok := rows.Children[1].Value.(*Queue)
	require.True(t, ok)
	require.Len(t, q.Columns, 1)
	assert.Equal(t, Column{
		Item: Constrained[Texts]{Sizing: Ratio, N: 3, Value: &If{
			Cond: QueueCurrent,
			Then: &Styled{Mods: []StyleMod{Add(Italic)}, Content: QueueTitle},
			Else: QueueTitle,
		}},
		Style:         []StyleMod{Fg(Indexed(75))},
		SelectedStyle: []StyleMod{Fg(Indexed(0)), Bg(Indexed(75)), Add(Bold)},
	}, q.Columns[0])
}

func TestDecode_YAML(t *testing.T) {
	doc := `
layout:
  columns:
    - ratio: 1
      widget:
        textbox: [{field: current_title}, " - ", {field: current_artist}]
    - fixed: 7
      widget:
        align: right
        textbox:
          if: {and: [repeat, {not: random}]}
          then: "@"
`
	m, err := yaml.Parser().Unmarshal([]byte(doc))
	require.NoError(t, err)

	w, err := Decode("layout", m["layout"])
	require.NoError(t, err)

	assert.Equal(t, &Columns{Children: []Constrained[Widget]{
		{Sizing: Ratio, N: 1, Value: &Textbox{Content: Parts{CurrentTitle, Text(" - "), CurrentArtist}}},
		{Sizing: Fixed, N: 7, Value: &Textbox{Align: AlignRight, Content: &If{
			Cond: &And{Left: Repeat, Right: &Not{Cond: Random}},
			Then: Text("@"),
		}}},
	}}, w)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "light_cyan", want: Indexed(14)},
		{in: " Black ", want: Indexed(0)},
		{in: "208", want: Indexed(208)},
		{in: "#1e90ff", want: RGB(0x1e, 0x90, 0xff)},
		{in: "256", wantErr: true},
		{in: "#12", wantErr: true},
		{in: "purple", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#1e90ff", RGB(0x1e, 0x90, 0xff).Hex())
	assert.Empty(t, Indexed(3).Hex())
}

func TestRatioDenominator(t *testing.T) {
	root, ok := Default().(*Rows)
	require.True(t, ok)

	header, ok := root.Children[0].Value.(*Columns)
	require.True(t, ok)
	assert.Equal(t, 33, RatioDenominator(header.Children))
	assert.Equal(t, 0, RatioDenominator(root.Children))
}
