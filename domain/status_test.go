package domain

import (
	"testing"

	"moonlight/errors"

	"github.com/stretchr/testify/require"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		current   DeliveryStatus
		requested DeliveryStatus
		next      DeliveryStatus
		duplicate bool
		fails     bool
	}{
		{
			name:      "arrived to delivered moves forward",
			current:   StatusArrived,
			requested: StatusDelivered,
			next:      StatusDelivered,
		},
		{
			name:      "arrived straight to read is allowed",
			current:   StatusArrived,
			requested: StatusRead,
			next:      StatusRead,
		},
		{
			name:      "delivered to read moves forward",
			current:   StatusDelivered,
			requested: StatusRead,
			next:      StatusRead,
		},
		{
			name:      "duplicate delivered report is a no-op success",
			current:   StatusDelivered,
			requested: StatusDelivered,
			next:      StatusDelivered,
			duplicate: true,
		},
		{
			name:      "duplicate read report is a no-op success",
			current:   StatusRead,
			requested: StatusRead,
			next:      StatusRead,
			duplicate: true,
		},
		{
			name:      "backward report is rejected",
			current:   StatusRead,
			requested: StatusDelivered,
			fails:     true,
		},
		{
			name:      "clients may never report SENT",
			current:   StatusArrived,
			requested: StatusSent,
			fails:     true,
		},
		{
			name:      "clients may never report ARRIVED",
			current:   StatusSent,
			requested: StatusArrived,
			fails:     true,
		},
		{
			name:      "ARRIVED is rejected even as a duplicate",
			current:   StatusArrived,
			requested: StatusArrived,
			fails:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			next, duplicate, err := Advance(tt.current, tt.requested)
			if tt.fails {
				req.ErrorIs(err, errors.ErrIllegalStatus)
				return
			}
			req.NoError(err)
			req.Equal(tt.next, next)
			req.Equal(tt.duplicate, duplicate)
		})
	}
}
