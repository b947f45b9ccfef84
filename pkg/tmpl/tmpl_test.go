package tmpl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greeting struct {
	Name    string
	Version string
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		data    any
		want    string
		wantErr bool
	}{
		{
			name: "simple substitution",
			tmpl: "hello {{ .Name }}",
			data: greeting{Name: "world"},
			want: "hello world",
		},
		{
			name: "with block skips empty name",
			tmpl: "Welcome{{ with .Name }}, {{ . }}{{ end }}!",
			data: greeting{},
			want: "Welcome!",
		},
		{
			name: "with block includes name",
			tmpl: "Welcome{{ with .Name }}, {{ . }}{{ end }}!",
			data: greeting{Name: "Ada"},
			want: "Welcome, Ada!",
		},
		{
			name: "default for blank value",
			tmpl: `hi {{ .Name | default "friend" }}`,
			data: greeting{Name: "  "},
			want: "hi friend",
		},
		{
			name: "default keeps value",
			tmpl: `hi {{ .Name | default "friend" }}`,
			data: greeting{Name: "Ada"},
			want: "hi Ada",
		},
		{
			name: "case helpers",
			tmpl: "{{ upper .Name }} {{ lower .Version }}",
			data: greeting{Name: "ada", Version: "DEV"},
			want: "ADA dev",
		},
		{
			name: "trim",
			tmpl: "[{{ trim .Name }}]",
			data: greeting{Name: "  padded  "},
			want: "[padded]",
		},
		{
			name: "no variables",
			tmpl: "static string",
			data: nil,
			want: "static string",
		},
		{
			name:    "missing map key errors",
			tmpl:    "{{ .Missing }}",
			data:    map[string]string{"Name": "test"},
			wantErr: true,
		},
		{
			name:    "unknown struct field errors",
			tmpl:    "{{ .Missing }}",
			data:    greeting{},
			wantErr: true,
		},
		{
			name:    "invalid template syntax",
			tmpl:    "{{ .Name }",
			data:    greeting{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
