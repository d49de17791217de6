package voronoi

import (
	"fmt"
	"math/rand"
)

// DistributeColors partitions n sites across k palette indices with exact
// count balance: every index is used floor(n/k) times and exactly n%k
// indices, chosen uniformly at random without replacement, are used one
// extra time. The final n-length sequence is uniformly permuted so a
// site's color carries no trace of generation order.
//
// When n%k == 0 the extra-selection step contributes nothing.
//
// k must satisfy 1 <= k <= n; anything else is a caller invariant
// violation and panics rather than produce a silently skewed
// distribution.
func DistributeColors(n, k int, rng *rand.Rand) []int {
	if k < 1 || k > n {
		panic(fmt.Sprintf("voronoi: cannot distribute %d colors across %d sites", k, n))
	}

	base := n / k
	remainder := n % k

	assignment := make([]int, 0, n)
	for color := 0; color < k; color++ {
		for i := 0; i < base; i++ {
			assignment = append(assignment, color)
		}
	}

	if remainder > 0 {
		// A prefix of a uniform permutation is a uniform sample without
		// replacement.
		for _, color := range rng.Perm(k)[:remainder] {
			assignment = append(assignment, color)
		}
	}

	rng.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})
	return assignment
}
