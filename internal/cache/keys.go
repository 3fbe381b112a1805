package cache

import (
	"fmt"
	"time"
)

const accountKeyPrefix = "account:%d"

// AccountTTL bounds staleness of cached account records.
const AccountTTL = 5 * time.Minute

// AccountKey returns the cache key for an account record.
func AccountKey(accountID uint) string {
	return fmt.Sprintf(accountKeyPrefix, accountID)
}
