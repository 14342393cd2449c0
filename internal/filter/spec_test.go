package filter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"news_dashboard/internal/filter"
	"news_dashboard/internal/models"
)

func recentPtr(daysAgo int) *time.Time {
	d := time.Now().AddDate(0, 0, -daysAgo)
	return &d
}

func TestValidate(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)
	old := time.Now().AddDate(0, -2, 0)

	testCases := []struct {
		name    string
		spec    filter.Spec
		wantErr error
	}{
		{name: "default spec", spec: filter.DefaultSpec(), wantErr: nil},
		{name: "full valid spec", spec: filter.Spec{Search: "go", Author: "ann", Type: models.TypeNews, From: recentPtr(10), To: recentPtr(2)}, wantErr: nil},
		{name: "single char search", spec: filter.Spec{Search: "g", Type: models.TypeAll}, wantErr: filter.ErrSearchTooShort},
		{name: "from without to", spec: filter.Spec{Type: models.TypeAll, From: recentPtr(5)}, wantErr: filter.ErrIncompleteRange},
		{name: "to without from is allowed", spec: filter.Spec{Type: models.TypeAll, To: recentPtr(5)}, wantErr: nil},
		{name: "inverted range", spec: filter.Spec{Type: models.TypeAll, From: recentPtr(2), To: recentPtr(10)}, wantErr: filter.ErrRangeInverted},
		{name: "future date", spec: filter.Spec{Type: models.TypeAll, From: recentPtr(2), To: &future}, wantErr: filter.ErrFutureDate},
		{name: "older than a month", spec: filter.Spec{Type: models.TypeAll, From: &old, To: recentPtr(2)}, wantErr: filter.ErrDateTooOld},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestInRange_ZeroTimeFailsActiveRange(t *testing.T) {
	spec := filter.Spec{From: recentPtr(10), To: recentPtr(1)}
	require.False(t, spec.InRange(time.Time{}))

	open := filter.DefaultSpec()
	require.True(t, open.InRange(time.Time{}))
}
