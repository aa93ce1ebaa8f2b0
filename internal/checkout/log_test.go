package checkout

import (
	"testing"

	"freshmart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary(number string) model.OrderSummary {
	return model.OrderSummary{
		ID:          uuid.New(),
		OrderNumber: number,
		Lines: []model.CartLine{
			{Product: model.Product{ID: "1", Price: 2.99}, Quantity: 2},
		},
		Subtotal: 5.98,
		Total:    -4.02,
	}
}

func TestLog_RecordAndGet(t *testing.T) {
	log := NewLog(zerolog.Nop())

	log.Record(testSummary("#SOD000001"))
	log.Record(testSummary("#SOD000002"))

	got := log.GetByNumber("#SOD000001")
	require.NotNil(t, got)
	assert.Equal(t, "#SOD000001", got.OrderNumber)

	assert.Nil(t, log.GetByNumber("#SOD999999"))
}

func TestLog_Latest(t *testing.T) {
	log := NewLog(zerolog.Nop())
	assert.Nil(t, log.Latest())

	log.Record(testSummary("#SOD000001"))
	log.Record(testSummary("#SOD000002"))

	latest := log.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "#SOD000002", latest.OrderNumber)
}

func TestLog_ReturnsCopies(t *testing.T) {
	log := NewLog(zerolog.Nop())
	log.Record(testSummary("#SOD000001"))

	got := log.GetByNumber("#SOD000001")
	got.Lines[0].Quantity = 42
	got.Total = 0

	again := log.GetByNumber("#SOD000001")
	assert.Equal(t, 2, again.Lines[0].Quantity)
	assert.InDelta(t, -4.02, again.Total, 1e-9)
}
