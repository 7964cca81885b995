package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		want    string
		wantErr error
	}{
		{name: "release", version: "1.0.0"},
		{name: "pre-release with build metadata", version: "v1.2.3-beta+build.42"},
		{name: "dev default", version: config.Defaults().App.Version},
		{name: "padded", version: " 1.0.1\n", want: "1.0.1"},
		{name: "missing", version: "", wantErr: ErrVersionIsNotSpecified},
		{name: "blank", version: "  ", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			want := tt.want
			if want == "" {
				want = tt.version
			}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			assert.Equal(t, want, svc.GetAppVersion(ctx), "served even on a cancelled context")
		})
	}
}
