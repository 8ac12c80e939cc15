package naming

// SplitConsecutive groups a non-decreasing sequence of integers into
// maximal runs where each element is exactly one greater than its
// predecessor. The input is not sorted here; that is the caller's
// responsibility. An empty input yields an empty output.
func SplitConsecutive(nums []int) [][]int {
	if len(nums) == 0 {
		return nil
	}
	var runs [][]int
	run := []int{nums[0]}
	for _, n := range nums[1:] {
		if n == run[len(run)-1]+1 {
			run = append(run, n)
			continue
		}
		runs = append(runs, run)
		run = []int{n}
	}
	return append(runs, run)
}
