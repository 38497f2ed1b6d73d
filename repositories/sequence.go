package repositories

// NextID produces the next ledger identifier from the current table maximum.
// Ids are dense from 1 and deleted ids are never reused; callers serialize
// assignment with a Redis lock before reading the maximum.
func NextID(maxExisting int) int {
	if maxExisting < 0 {
		maxExisting = 0
	}
	return maxExisting + 1
}
