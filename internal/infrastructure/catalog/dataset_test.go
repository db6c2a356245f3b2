package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataset(t *testing.T) {
	t.Run("decodes canonical field names", func(t *testing.T) {
		data := `[{
			"store_name": "ALDI",
			"product_name": "Milk",
			"quantity": 1,
			"unit": "l",
			"price": 2.5,
			"valid_from": "2025-06-01",
			"valid_until": "2025-06-30",
			"image": "http://img/milk.png"
		}]`

		offers, err := DecodeDataset(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, offers, 1)

		o := offers[0]
		assert.Equal(t, "ALDI", o.StoreName)
		assert.Equal(t, "Milk", o.ProductName)
		assert.Equal(t, 1.0, o.Quantity)
		assert.Equal(t, "l", o.Unit)
		assert.Equal(t, 2.5, o.Price)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), o.ValidFrom)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), o.ValidUntil)
		assert.Equal(t, "http://img/milk.png", o.Image)
	})

	t.Run("accepts alias field names", func(t *testing.T) {
		data := `[{
			"store": "LIDL",
			"productName": "Bread",
			"quantity": "1",
			"unit": "piece",
			"price": "2.0",
			"validFrom": "2025-06-01",
			"validUntil": "2025-06-30"
		}]`

		offers, err := DecodeDataset(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, offers, 1)

		assert.Equal(t, "LIDL", offers[0].StoreName)
		assert.Equal(t, "Bread", offers[0].ProductName)
		assert.Equal(t, 1.0, offers[0].Quantity)
		assert.Equal(t, 2.0, offers[0].Price)
	})

	t.Run("valid_from defaults to valid_until when absent", func(t *testing.T) {
		data := `[{
			"store_name": "REWE",
			"product_name": "Butter",
			"quantity": 250,
			"unit": "g",
			"price": 2.2,
			"valid_until": "2025-06-30"
		}]`

		offers, err := DecodeDataset(strings.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, offers[0].ValidUntil, offers[0].ValidFrom)
	})

	t.Run("rejects record without store name", func(t *testing.T) {
		data := `[{"product_name": "Milk", "quantity": 1, "unit": "l", "price": 2.5, "valid_until": "2025-06-30"}]`

		_, err := DecodeDataset(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record 0")
		assert.Contains(t, err.Error(), "store name")
	})

	t.Run("rejects record with malformed date", func(t *testing.T) {
		data := `[{"store_name": "ALDI", "product_name": "Milk", "quantity": 1, "unit": "l", "price": 2.5, "valid_until": "30.06.2025"}]`

		_, err := DecodeDataset(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valid_until")
	})

	t.Run("rejects non-numeric price", func(t *testing.T) {
		data := `[{"store_name": "ALDI", "product_name": "Milk", "quantity": 1, "unit": "l", "price": "cheap", "valid_until": "2025-06-30"}]`

		_, err := DecodeDataset(strings.NewReader(data))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := DecodeDataset(strings.NewReader("not json"))
		require.Error(t, err)
	})
}
