package redis

import "fmt"

// Key prefix for all portal data
const keyPrefix = "mtarp"

// viewStateKey returns the Redis key for a browser session's view state
func viewStateKey(id string) string {
	return fmt.Sprintf("%s:viewstate:%s", keyPrefix, id)
}
