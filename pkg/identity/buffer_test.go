package identity

import (
	"reflect"
	"testing"

	"github.com/Veraticus/weechat-notify-send/pkg/host"
)

func TestNamesForBuffer(t *testing.T) {
	tests := []struct {
		name      string
		fullName  string
		shortName string
		want      []string
	}{
		{
			name:      "both names",
			fullName:  "network.#buffer",
			shortName: "#buffer",
			want:      []string{"network.#buffer", "#buffer"},
		},
		{
			name:      "unjoined channel sentinel",
			fullName:  "network.#buffer",
			shortName: ">buffer",
			want:      []string{"network.#buffer", ">buffer", "#buffer"},
		},
		{
			name:      "short name only",
			shortName: "#buffer",
			want:      []string{"#buffer"},
		},
		{
			name:      "duplicate names",
			fullName:  "weechat",
			shortName: "weechat",
			want:      []string{"weechat"},
		},
		{
			name: "no names",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buffers := host.NewMemoryBuffers()
			buffers.SetBufferString("buffer", host.PropName, tt.fullName)
			buffers.SetBufferString("buffer", host.PropShortName, tt.shortName)

			got := NamesForBuffer(buffers, "buffer")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NamesForBuffer() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
