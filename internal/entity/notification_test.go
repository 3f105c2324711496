package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Broadcast(t *testing.T) {
	for _, kind := range []EventKind{EventFundingUpdate, EventInvoiceUpdate, EventMilestoneUpdate} {
		assert.Equal(t, BucketBroadcast, kind.Classify(), string(kind))
	}
}

func TestClassify_Targeted(t *testing.T) {
	for _, kind := range []EventKind{
		EventFundingStatusUpdate,
		EventInvoiceStatusUpdate,
		EventMilestoneStatusUpdate,
		EventKYCStatusUpdate,
	} {
		assert.Equal(t, BucketTargeted, kind.Classify(), string(kind))
	}
}

func TestClassify_Unhandled(t *testing.T) {
	assert.Equal(t, BucketUnhandled, EventSystemAlert.Classify())
	assert.Equal(t, BucketUnhandled, EventKind("something_else").Classify())
	assert.Equal(t, BucketUnhandled, EventKind("").Classify())
}
