package kernel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr bool
		errType error
	}{
		{
			name:    "valid period",
			start:   date(2025, time.March, 10),
			end:     date(2025, time.March, 14),
			wantErr: false,
		},
		{
			name:    "same day period",
			start:   date(2025, time.March, 10),
			end:     date(2025, time.March, 10),
			wantErr: false,
		},
		{
			name:    "end before start",
			start:   date(2025, time.March, 14),
			end:     date(2025, time.March, 10),
			wantErr: true,
			errType: errs.NewValueIsInvalidError("endDate"),
		},
		{
			name:    "missing start date",
			start:   time.Time{},
			end:     date(2025, time.March, 10),
			wantErr: true,
			errType: errs.NewValueIsRequiredError("startDate"),
		},
		{
			name:    "missing end date",
			start:   date(2025, time.March, 10),
			end:     time.Time{},
			wantErr: true,
			errType: errs.NewValueIsRequiredError("endDate"),
		},
		{
			name:    "both dates missing",
			start:   time.Time{},
			end:     time.Time{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := kernel.NewPeriod(tt.start, tt.end)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Zero(t, period)
				if tt.errType != nil {
					assert.ErrorAs(t, err, &tt.errType)
				}
			} else {
				require.NoError(t, err)
				assert.True(t, period.Start().Equal(tt.start))
				assert.True(t, period.End().Equal(tt.end))
				assert.NoError(t, period.Validate())
			}
		})
	}
}

func TestPeriod_Validate(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		period, err := kernel.NewPeriod(date(2025, time.March, 10), date(2025, time.March, 14))
		require.NoError(t, err)
		assert.NoError(t, period.Validate())
	})

	t.Run("zero value period", func(t *testing.T) {
		var period kernel.Period
		err := period.Validate()
		assert.Error(t, err)
		assert.Equal(t, kernel.ErrPeriodIsNotConstructed, err)
	})
}

func TestPeriod_Days(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "four day rental",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 14),
			want:  4,
		},
		{
			name:  "single day",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 11),
			want:  1,
		},
		{
			name:  "same day spans zero days",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 10),
			want:  0,
		},
		{
			name:  "spans month boundary",
			start: date(2025, time.March, 30),
			end:   date(2025, time.April, 2),
			want:  3,
		},
		{
			name:  "partial day is truncated",
			start: date(2025, time.March, 10),
			end:   date(2025, time.March, 12).Add(6 * time.Hour),
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := mustNewPeriod(t, tt.start, tt.end)
			assert.Equal(t, tt.want, period.Days())
		})
	}
}

func TestPeriod_EndsBefore(t *testing.T) {
	tests := []struct {
		name    string
		period  kernel.Period
		moment  time.Time
		want    bool
		wantErr bool
	}{
		{
			name:    "ended period",
			period:  mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			moment:  date(2025, time.March, 20),
			want:    true,
			wantErr: false,
		},
		{
			name:    "ongoing period",
			period:  mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			moment:  date(2025, time.March, 12),
			want:    false,
			wantErr: false,
		},
		{
			name:    "moment equal to end is not before",
			period:  mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			moment:  date(2025, time.March, 14),
			want:    false,
			wantErr: false,
		},
		{
			name:    "zero value period",
			period:  kernel.Period{},
			moment:  date(2025, time.March, 14),
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.period.EndsBefore(tt.moment)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPeriod_String(t *testing.T) {
	period := mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14))
	assert.Equal(t, "Period(2025-03-10..2025-03-14)", period.String())
}

func TestPeriod_IsEqual(t *testing.T) {
	tests := []struct {
		name    string
		period1 kernel.Period
		period2 kernel.Period
		want    bool
		wantErr bool
	}{
		{
			name:    "equal periods",
			period1: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			period2: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			want:    true,
			wantErr: false,
		},
		{
			name:    "different start",
			period1: mustNewPeriod(t, date(2025, time.March, 9), date(2025, time.March, 14)),
			period2: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			want:    false,
			wantErr: false,
		},
		{
			name:    "different end",
			period1: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 13)),
			period2: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			want:    false,
			wantErr: false,
		},
		{
			name:    "first period invalid",
			period1: kernel.Period{},
			period2: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			want:    false,
			wantErr: true,
		},
		{
			name:    "second period invalid",
			period1: mustNewPeriod(t, date(2025, time.March, 10), date(2025, time.March, 14)),
			period2: kernel.Period{},
			want:    false,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.period1.IsEqual(tt.period2)

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func mustNewPeriod(t *testing.T, start, end time.Time) kernel.Period {
	t.Helper()
	period, err := kernel.NewPeriod(start, end)
	require.NoError(t, err)
	return period
}
