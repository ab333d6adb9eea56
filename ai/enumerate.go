package ai

import (
	"fmt"

	"github.com/gopherd/landlord/poker"
)

// 单种牌面值的动作(单, 对, 三, 炸弹)
// 每个数量不少于 length 的牌面值产生一个动作. 数量恰好为 4 的牌面值只在 length 为 2 或 4 时出现
func EnumerateRepeats(block poker.Cards, length int) []poker.Cards {
	if length <= 0 {
		panic(fmt.Sprintf("ai: invalid repeat length %d", length))
	}
	var (
		result []poker.Cards
		set    = poker.NewSet(block)
		last   = poker.InvalidCard
	)
	for i := length; i <= len(block); i++ {
		c := block[i-1]
		if c != block[i-length] || c == last {
			continue
		}
		last = c
		if (length == 1 || length == 3) && set.Count(c) == 4 {
			continue
		}
		result = append(result, repeat(c, length))
	}
	return result
}

// 连续牌面值的动作(顺子, 连对, 飞机主体)
// ranks 为升序且不重复的牌面值, 每个长度为 length 的连续窗口产生一个动作, 每个牌面值重复 groupSize 次
func EnumerateRuns(ranks poker.Cards, groupSize, length int) []poker.Cards {
	if groupSize <= 0 || length <= 0 {
		panic(fmt.Sprintf("ai: invalid run shape %dx%d", groupSize, length))
	}
	var result []poker.Cards
	for i := length - 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-length+1]+poker.Card(length-1) {
			continue
		}
		action := make(poker.Cards, 0, groupSize*length)
		for _, c := range ranks[i-length+1 : i+1] {
			for j := 0; j < groupSize; j++ {
				action = append(action, c)
			}
		}
		result = append(result, action)
	}
	return result
}

func repeat(c poker.Card, n int) poker.Cards {
	ret := make(poker.Cards, n)
	for i := range ret {
		ret[i] = c
	}
	return ret
}

// 一个连续块内所有候选动作
func (e *evaluator) candidates(block poker.Cards) []poker.Cards {
	var result []poker.Cards
	for length := 1; length <= 4; length++ {
		result = append(result, EnumerateRepeats(block, length)...)
	}
	suffix, _, _ := poker.SuffixBuckets(block)
	for groupSize, minLen := range e.minLengths() {
		if groupSize == 0 {
			continue
		}
		ranks := suffix[groupSize]
		for length := minLen; length <= len(ranks); length++ {
			result = append(result, EnumerateRuns(ranks, groupSize, length)...)
		}
	}
	return result
}

// 下标为每个牌面值的张数
func (e *evaluator) minLengths() [4]int {
	return [4]int{0, e.opts.MinLengthOfChain, e.opts.MinLengthOfPairChain, e.opts.MinLengthOfPlane}
}
