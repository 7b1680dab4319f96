package api

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/filter-today/filterctl/internal/record"
)

// ToneMapCache stores the last successful tone map per month so the calendar
// can paint stale data when the backend is unreachable.
type ToneMapCache interface {
	Month(year, month int) (record.ToneMap, time.Time, error)
	PutMonth(year, month int, tm record.ToneMap) error
}

// MonthToneMap fetches the record index for a month, applying the degrade
// policy: auth expiry propagates (the caller must send the user back to
// login), every other failure logs a diagnostic and falls back to the cached
// month when one exists, or an empty index otherwise, so the calendar always
// renders. stale reports whether the returned index came from the cache.
func MonthToneMap(ctx context.Context, c *Client, cache ToneMapCache, year, month int) (tm record.ToneMap, stale bool, err error) {
	tm, err = c.ToneMap(ctx, year, month)
	if err == nil {
		if cache != nil {
			if cerr := cache.PutMonth(year, month, tm); cerr != nil {
				log.Printf("tonemap cache: storing %s: %v", record.MonthKey(year, month), cerr)
			}
		}
		return tm, false, nil
	}
	if errors.Is(err, ErrAuthExpired) {
		return record.ToneMap{}, false, err
	}

	log.Printf("tonemap: fetching %s: %v", record.MonthKey(year, month), err)
	if cache != nil {
		if cached, _, cerr := cache.Month(year, month); cerr == nil {
			return cached, true, nil
		}
	}
	return record.ToneMap{}, false, nil
}
