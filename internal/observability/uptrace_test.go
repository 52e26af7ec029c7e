package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/diamondtrends/internal/config"
	"github.com/riskibarqy/diamondtrends/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "diamondtrends",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitUptrace_EmptyDSNStaysDisabled(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	require.NoError(t, stop())
}

func TestPprofServer_DisabledIsNoop(t *testing.T) {
	srv, err := StartPprofServer(config.Config{}, logging.NewNop())
	require.NoError(t, err)
	require.Nil(t, srv)
	require.NoError(t, StopPprofServer(srv, logging.NewNop(), 0))
}
