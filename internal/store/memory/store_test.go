package memory

import (
	"testing"

	"github.com/growplan/engine/internal/domain"
	"github.com/growplan/engine/internal/storecompliance"
)

func TestMemoryStore_Compliance(t *testing.T) {
	storecompliance.Run(t, func() storecompliance.Store {
		return New(domain.UserPreferences{})
	})
}
