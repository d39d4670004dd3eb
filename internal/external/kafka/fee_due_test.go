package kafka

import (
	"testing"

	"github.com/glkeru/cardfee/internal/config"
	models "github.com/glkeru/cardfee/internal/models"
	"github.com/stretchr/testify/require"
)

func TestParseFeeDueEvent(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    models.FeeDueEvent
		wantErr bool
	}{
		{"valid", `{"cardId":"card-1","feeYear":2025}`, models.FeeDueEvent{CardID: "card-1", FeeYear: 2025}, false},
		{"extra fields", `{"cardId":"card-1","feeYear":2025,"source":"billing"}`, models.FeeDueEvent{CardID: "card-1", FeeYear: 2025}, false},
		{"no card", `{"feeYear":2025}`, models.FeeDueEvent{}, true},
		{"no year", `{"cardId":"card-1"}`, models.FeeDueEvent{}, true},
		{"not json", `card-1`, models.FeeDueEvent{}, true},
	}
	for _, ts := range tests {
		t.Run(ts.name, func(t *testing.T) {
			t.Parallel()
			event, err := ParseFeeDueEvent([]byte(ts.value))
			if ts.wantErr {
				require.ErrorIs(t, err, models.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			require.Equal(t, ts.want, event)
		})
	}
}

func TestNewFeeDueReaderRequiresBrokers(t *testing.T) {
	_, err := NewFeeDueReader(config.KafkaConfig{Topic: "fee_due", Workers: 1})
	require.Error(t, err)
}
