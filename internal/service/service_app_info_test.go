package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-prefs-keeper/internal/config"
	"github.com/MKhiriev/go-prefs-keeper/internal/logger"
	"github.com/MKhiriev/go-prefs-keeper/internal/mock"
	"github.com/MKhiriev/go-prefs-keeper/internal/settings"
	"github.com/MKhiriev/go-prefs-keeper/internal/store"
)

func newMemoryRecorder() settings.Recorder {
	return settings.NewRecorder(store.NewMemoryStore())
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, newMemoryRecorder(), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewAppInfoService_NoRecorder_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoRecorder)
}

func TestGetAppInfo_BeforeStart(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, newMemoryRecorder(), logger.Nop())
	require.NoError(t, err)

	info := svc.GetAppInfo(context.Background())
	assert.Equal(t, AppInfo{Version: "3.1.4", SettingsVersion: -1}, info)
	assert.NoError(t, svc.Stop(context.Background()))
}

func TestStart_UpgradesSettingsLayout(t *testing.T) {
	ctx := context.Background()
	rec := newMemoryRecorder()
	require.NoError(t, rec.SetTimeSpan(ctx, ServeTimeKey, time.Hour))
	require.NoError(t, rec.SetInt(ctx, settings.VersionKey, 0))

	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, rec, logger.Nop())
	require.NoError(t, err)

	res, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.StatusRecentlyUpdated, res.Status)
	assert.Equal(t, []int{1}, res.Applied)

	info := svc.GetAppInfo(ctx)
	assert.Equal(t, 1, info.SettingsVersion)
	assert.Equal(t, "recently-updated", info.Status)
	assert.GreaterOrEqual(t, info.ServeTime, time.Hour)

	require.NoError(t, svc.Stop(ctx))
	stored, err := rec.GetTimeSpan(ctx, ServeTimeKey, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stored, time.Hour)
}

func TestStart_FirstTimeOpened(t *testing.T) {
	ctx := context.Background()
	rec := newMemoryRecorder()

	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, rec, logger.Nop())
	require.NoError(t, err)

	res, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.StatusFirstTimeOpened, res.Status)

	ok, err := rec.HasKey(ctx, ServeTimeKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStart_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rec := mock.NewMockRecorder(ctrl)
	boom := errors.New("boom")
	rec.EXPECT().GetInt(gomock.Any(), settings.VersionKey, -1).Return(-1, boom)

	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, rec, logger.Nop())
	require.NoError(t, err)

	_, err = svc.Start(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, -1, svc.GetAppInfo(context.Background()).SettingsVersion)
}
