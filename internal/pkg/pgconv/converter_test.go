//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"bookstore-api/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.01", "12.50", "9999.99"} {
		t.Run(s, func(t *testing.T) {
			in := decimal.RequireFromString(s)
			out, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(in))
			require.NoError(t, err)
			assert.True(t, in.Equal(out), "want %s got %s", in, out)
		})
	}
}

func TestDecimalFromNumeric_Invalid(t *testing.T) {
	cases := map[string]pgtype.Numeric{
		"null":     {Valid: false},
		"nan":      {NaN: true, Valid: true},
		"infinity": {InfinityModifier: pgtype.Infinity, Valid: true},
	}
	for name, n := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := pgconv.DecimalFromNumeric(n)
			assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
		})
	}

	t.Run("scaled integer", func(t *testing.T) {
		d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "12.50", d.StringFixed(2))
	})
}
