package distribution

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mukeshpandey0286/agent-management-backend/internal/model"
)

func makeContacts(n int) []model.Contact {
	contacts := make([]model.Contact, n)
	for i := range contacts {
		contacts[i] = model.Contact{FirstName: fmt.Sprintf("c%d", i), Phone: "555"}
	}
	return contacts
}

func TestAllocate(t *testing.T) {
	t.Run("7 across 3 gives 3,2,2 with the extra up front", func(t *testing.T) {
		shares, err := Allocate(makeContacts(7), 3)
		require.NoError(t, err)
		require.Len(t, shares, 3)
		assert.Len(t, shares[0], 3)
		assert.Len(t, shares[1], 2)
		assert.Len(t, shares[2], 2)

		// Contiguous slicing preserves input order.
		assert.Equal(t, "c0", shares[0][0].FirstName)
		assert.Equal(t, "c3", shares[1][0].FirstName)
		assert.Equal(t, "c5", shares[2][0].FirstName)
	})

	t.Run("no active agents is a hard failure", func(t *testing.T) {
		_, err := Allocate(makeContacts(5), 0)
		assert.ErrorIs(t, err, ErrNoActiveAgents)
	})

	t.Run("fewer contacts than agents leaves trailing shares empty", func(t *testing.T) {
		shares, err := Allocate(makeContacts(2), 5)
		require.NoError(t, err)
		require.Len(t, shares, 5)
		assert.Len(t, shares[0], 1)
		assert.Len(t, shares[1], 1)
		for _, s := range shares[2:] {
			assert.Empty(t, s)
		}
	})

	t.Run("share sizes differ by at most one for any N and M", func(t *testing.T) {
		for n := 0; n <= 50; n++ {
			for m := 1; m <= 10; m++ {
				shares, err := Allocate(makeContacts(n), m)
				require.NoError(t, err)
				require.Len(t, shares, m)

				base := n / m
				extra := n % m
				total, oversized := 0, 0
				for i, s := range shares {
					total += len(s)
					switch len(s) {
					case base + 1:
						oversized++
						assert.Less(t, i, extra, "oversized share out of position for N=%d M=%d", n, m)
					case base:
						// fine
					default:
						t.Fatalf("share size %d not in {%d, %d} for N=%d M=%d", len(s), base, base+1, n, m)
					}
				}
				assert.Equal(t, n, total, "N=%d M=%d", n, m)
				assert.Equal(t, extra, oversized, "N=%d M=%d", n, m)
			}
		}
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		contacts := makeContacts(13)
		first, err := Allocate(contacts, 4)
		require.NoError(t, err)
		second, err := Allocate(contacts, 4)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
