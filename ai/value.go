package ai

import (
	"github.com/gopherd/landlord/poker"
)

// 拆牌价值: 一手牌(忽略 2 和王)最多能一次出掉的牌数
//
//	[5,5,6,6,6] => 5 (三带二)
//	[5,5,6,6,7,7] => 6 (连对)
func DecomposeValue(cards poker.Cards) int {
	return decomposeValue(cards, DefaultOptions)
}

func decomposeValue(cards poker.Cards, opts Options) int {
	low, _, _ := poker.PartitionLowerThanTwo(cards)
	if len(low) == 0 {
		return 0
	}
	plain, maxCount, _ := poker.SplitByEqualRank(low)
	suffix, _, _ := poker.SuffixBuckets(low)

	best := maxCount
	best = max(best, longestRun(suffix[1], opts.MinLengthOfChain))
	best = max(best, longestRun(suffix[2], opts.MinLengthOfPairChain)*2)
	best = max(best, longestRun(suffix[3], opts.MinLengthOfPlane)*3)

	// 三带N: 以最长的连续三张为主体, 其余的三张及以下牌面值作为翼
	if t, top := longestRunAt(suffix[3]); t > 0 {
		singles, pairs := looseUnits(plain, top-poker.Card(t-1), top)
		best = max(best, 3*t)
		if singles >= t {
			best = max(best, 4*t)
		}
		if pairs >= t {
			best = max(best, 5*t)
		}
	}

	// 四带二
	if len(plain[4]) > 0 {
		singles, pairs := looseUnits(plain, poker.InvalidCard, poker.InvalidCard)
		best = max(best, 4)
		if singles >= 2 {
			best = max(best, 6)
		}
		if pairs >= 2 {
			best = max(best, 8)
		}
	}
	return best
}

// 最长连续段的长度, 小于 minLen 时返回 0
func longestRun(ranks poker.Cards, minLen int) int {
	n, _ := longestRunAt(ranks)
	if n < minLen {
		return 0
	}
	return n
}

// 最长连续段的长度及其最大牌面值, 长度相同时取较大的一段
func longestRunAt(ranks poker.Cards) (int, poker.Card) {
	var (
		n   int
		top poker.Card
	)
	for _, run := range poker.SplitIntoRuns(ranks) {
		if len(run) >= n {
			n, top = len(run), run[len(run)-1]
		}
	}
	return n, top
}

// 不属于 [lo, hi] 且数量不超过 3 的牌面值可以提供的单牌份数和对子份数
func looseUnits(plain poker.Buckets, lo, hi poker.Card) (singles, pairs int) {
	for k := 1; k <= 3; k++ {
		for _, c := range plain[k] {
			if c >= lo && c <= hi {
				continue
			}
			singles += k
			pairs += k / 2
		}
	}
	return
}

// 单次拆牌过程中使用的评估器, 缓存每个剩余牌集合的拆牌价值
type evaluator struct {
	opts   Options
	values map[poker.Set]int
}

func newEvaluator(opts Options) *evaluator {
	return &evaluator{
		opts:   opts,
		values: make(map[poker.Set]int),
	}
}

func (e *evaluator) value(s poker.Set) int {
	if v, ok := e.values[s]; ok {
		return v
	}
	v := decomposeValue(s.Cards(), e.opts)
	e.values[s] = v
	return v
}

const minScore = -1 << 30

// 在 state 中打出 action 的得分, action 必须是 state 的子集
func (e *evaluator) score(state poker.Set, action poker.Cards) int {
	a := poker.NewSet(action)
	rest, ok := state.Remove(a)
	if !ok {
		return minScore
	}
	if rest.Empty() {
		return e.opts.TerminalScore
	}
	score := e.value(rest) + len(action)
	if breaksBomb(state, a) {
		score -= e.opts.BombBreakPenalty
	}
	if combo := poker.Classify(action); combo.MainKind() == 3 && combo.TakeKind() != poker.TakeNone {
		score += e.opts.AttachBonus * combo.RunLength()
	}
	return score
}

// 动作是否拆散了 state 中的炸弹
func breaksBomb(state, action poker.Set) bool {
	return action.Walk(func(c poker.Card, n int) bool {
		return n < 4 && state.Count(c) == 4
	})
}

// 在 state 中打出 action 的得分, 使用默认选项
func Score(state, action poker.Cards) int {
	return newEvaluator(DefaultOptions).score(poker.NewSet(state), action)
}
