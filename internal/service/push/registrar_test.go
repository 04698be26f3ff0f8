package push

import (
	"context"
	"errors"
	"testing"

	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"go.uber.org/mock/gomock"
)

func TestRegistrar_Register(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		setupMock func(*backend.MockDeviceRepository)
		want      Mode
	}{
		{
			name:  "registered",
			token: "fcm-token",
			setupMock: func(m *backend.MockDeviceRepository) {
				m.EXPECT().RegisterDevice(gomock.Any(), backend.DeviceRegistration{
					PushToken:  "fcm-token",
					Platform:   "android",
					DeviceInfo: map[string]string{"model": "Pixel 8"},
				}).Return(nil)
			},
			want: ModePush,
		},
		{
			name:  "backend failure downgrades",
			token: "fcm-token",
			setupMock: func(m *backend.MockDeviceRepository) {
				m.EXPECT().RegisterDevice(gomock.Any(), gomock.Any()).Return(&backend.StatusError{StatusCode: 500})
			},
			want: ModeLocalOnly,
		},
		{
			name:  "network failure downgrades",
			token: "fcm-token",
			setupMock: func(m *backend.MockDeviceRepository) {
				m.EXPECT().RegisterDevice(gomock.Any(), gomock.Any()).Return(errors.New("no route to host"))
			},
			want: ModeLocalOnly,
		},
		{
			name:      "empty token skips backend",
			token:     "  ",
			setupMock: func(m *backend.MockDeviceRepository) {},
			want:      ModeLocalOnly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := backend.NewMockDeviceRepository(ctrl)
			tt.setupMock(repo)

			r := NewRegistrar(repo, nil)

			got := r.Register(context.Background(), tt.token, "android", map[string]string{"model": "Pixel 8"})
			if got != tt.want {
				t.Errorf("mode: got %q, want %q", got, tt.want)
			}
		})
	}
}
