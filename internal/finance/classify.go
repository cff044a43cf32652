package finance

import "strings"

// Bucket is the closed classification of an order's checkout status.
// Upstream statuses are free text; they are decoded into a Bucket exactly
// once, at the record boundary, so the fold never re-parses strings.
type Bucket int

const (
	BucketUnknown Bucket = iota
	BucketPaid
	BucketPending
	BucketAbandoned
)

func (b Bucket) String() string {
	switch b {
	case BucketPaid:
		return "paid"
	case BucketPending:
		return "pending"
	case BucketAbandoned:
		return "abandoned"
	}
	return "unknown"
}

var (
	paidStatuses = map[string]struct{}{
		"PAID": {}, "CONFIRMED": {}, "PROCESSING": {}, "SHIPPED": {}, "DELIVERED": {}, "COMPLETED": {},
	}
	pendingStatuses = map[string]struct{}{
		"PENDING": {}, "PREPARING": {}, "WAITING": {},
	}
	abandonedStatuses = map[string]struct{}{
		"ABANDONED": {}, "CANCELED": {},
	}
)

// ClassifyStatus maps a raw checkout status onto a Bucket. Matching is
// case-insensitive; anything outside the fixed vocabulary (including an
// empty or missing status) is BucketUnknown and only counts toward the
// generated totals.
func ClassifyStatus(status string) Bucket {
	s := strings.ToUpper(strings.TrimSpace(status))
	if _, ok := paidStatuses[s]; ok {
		return BucketPaid
	}
	if _, ok := pendingStatuses[s]; ok {
		return BucketPending
	}
	if _, ok := abandonedStatuses[s]; ok {
		return BucketAbandoned
	}
	return BucketUnknown
}
