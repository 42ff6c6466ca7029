package domain

import (
	"fmt"
	"log/slog"
)

// Credentials authenticate against the outbound mail relay.
// Secret only lives in memory for the duration of a dispatch.
type Credentials struct {
	Sender string `validate:"required,email"`
	Secret string `validate:"required"`
	Host   string `validate:"required,hostname_rfc1123|ip"`
	Port   int    `validate:"min=1,max=65535"`
}

func (c Credentials) String() string {
	return fmt.Sprintf("%s via %s:%d", c.Sender, c.Host, c.Port)
}

// LogValue keeps the secret out of structured logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("sender", c.Sender),
		slog.String("host", c.Host),
		slog.Int("port", c.Port),
	)
}
