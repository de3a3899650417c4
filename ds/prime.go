package ds

// LoadFactor is the ratio of entries to buckets a table is sized for. It is
// only used at construction; tables never grow.
const LoadFactor = 0.75

// maxEstimate caps the size hint; larger hints get the same bucket count.
const maxEstimate = 1 << 30

// capacityFor returns the smallest prime not below ceil(estimatedSize/LoadFactor).
func capacityFor(estimatedSize int) int {
	estimatedSize = max(0, min(estimatedSize, maxEstimate))
	// ceil(n / 0.75) == ceil(4n / 3), split so 4n is never formed
	return nextPrime(estimatedSize/3*4 + (estimatedSize%3*4+2)/3)
}

// nextPrime returns the smallest prime >= n.
func nextPrime(n int) int {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !isPrime(n) {
		n += 2
	}
	return n
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
