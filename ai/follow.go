package ai

import (
	"sort"

	"github.com/gopherd/log"

	"github.com/gopherd/landlord/poker"
)

// 跟牌时的拆牌结果
type FollowResult struct {
	Bombs    []poker.Cards // 能管上的炸弹(升序), 王炸在最后
	MinDelta int           // Actions 中最小的拆牌代价
	Actions  []poker.Cards // 非炸弹的跟牌动作, 按代价和牌面值升序
	Deltas   []int         // Actions 中每个动作的拆牌代价
	Max      poker.Cards   // 能管上的最大的非炸弹动作
}

// 是否只能不出
func (fr FollowResult) Empty() bool {
	return len(fr.Bombs) == 0 && len(fr.Actions) == 0 && len(fr.Max) == 0
}

// 候选动作及其拆牌代价
type candidate struct {
	cards poker.Cards
	value poker.Card
	delta int
}

func sortCandidates(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].delta != cs[j].delta {
			return cs[i].delta < cs[j].delta
		}
		return cs[i].value < cs[j].value
	})
}

// 跟牌拆牌, last 为需要管上的牌
func DecomposeForFollow(hand poker.Cards, last poker.Combo, opts Options) FollowResult {
	opts = opts.normalize()
	if opts.Strict {
		hand.MustCheck()
	}
	var fr FollowResult
	if len(hand) == 0 || !last.IsValid() || last.IsPass() {
		return fr
	}
	low, twos, jokers := poker.PartitionLowerThanTwo(hand)
	fr.Bombs = beatingBombs(poker.NewSet(hand), len(jokers) == 2, last)
	if last.IsBombOrRocket() {
		return fr
	}

	e := newEvaluator(opts)
	var mains, takes []candidate
	for _, block := range poker.SplitIntoRuns(low) {
		m, t := e.followBlock(block, last)
		mains = append(mains, m...)
		takes = append(takes, t...)
	}
	m, t := stealCandidates(twos, jokers, last)
	mains = append(mains, m...)
	takes = append(takes, t...)
	sortCandidates(mains)
	sortCandidates(takes)

	actions := mergeTakes(mains, takes, last)
	sortCandidates(actions)
	for _, a := range actions {
		fr.Actions = append(fr.Actions, a.cards)
		fr.Deltas = append(fr.Deltas, a.delta)
	}
	if len(fr.Deltas) > 0 {
		fr.MinDelta = fr.Deltas[0]
	}
	if combo, ok := maxBeat(hand, last); ok {
		fr.Max = combo.Cards()
	}

	log.Debug().
		Any("hand", hand).
		Any("last", last).
		Any("actions", len(fr.Actions)).
		Any("bombs", len(fr.Bombs)).
		Any("min_delta", fr.MinDelta).
		Print("decompose for follow")
	return fr
}

// 能管上 last 的炸弹和王炸
func beatingBombs(hand poker.Set, rocket bool, last poker.Combo) []poker.Cards {
	var bombs []poker.Cards
	for c := poker.MinCard; c <= poker.Card2; c++ {
		if hand.Count(c) != 4 {
			continue
		}
		bomb := repeat(c, 4)
		if poker.Classify(bomb).GreaterThan(last) {
			bombs = append(bombs, bomb)
		}
	}
	if rocket && !last.IsRocket() {
		bombs = append(bombs, poker.Cards{poker.CardG0, poker.CardG1})
	}
	return bombs
}

// 一个块内与 last 主体形状相同且更大的动作, 以及可以用作带牌的动作
func (e *evaluator) followBlock(block poker.Cards, last poker.Combo) (mains, takes []candidate) {
	state := poker.NewSet(block)
	blockMax := minScore
	for _, action := range e.candidates(block) {
		blockMax = max(blockMax, e.score(state, action))
	}
	deltaOf := func(action poker.Cards) int {
		return blockMax - e.score(state, action)
	}
	for _, action := range mainShapes(block, last) {
		if top := action[len(action)-1]; top > last.Value() {
			mains = append(mains, candidate{cards: action, value: top, delta: deltaOf(action)})
		}
	}
	if take := last.TakeKind(); take != poker.TakeNone {
		for _, action := range EnumerateRepeats(block, int(take)) {
			takes = append(takes, candidate{cards: action, value: action[0], delta: deltaOf(action)})
		}
	}
	return
}

// 与 last 主体形状相同的所有动作
func mainShapes(block poker.Cards, last poker.Combo) []poker.Cards {
	switch last.Category() {
	case poker.Straight, poker.PairStraight,
		poker.Airplane, poker.AirplaneWithSingles, poker.AirplaneWithPairs:
		suffix, _, _ := poker.SuffixBuckets(block)
		kind := last.MainKind()
		return EnumerateRuns(suffix[kind], kind, last.RunLength())
	}
	if kind := last.MainKind(); kind > 0 {
		return EnumerateRepeats(block, kind)
	}
	return nil
}

// 2 和王参与跟牌: 拆开的 2 或王炸的代价为剩下的张数
func stealCandidates(twos, jokers poker.Cards, last poker.Combo) (mains, takes []candidate) {
	kind, n2 := last.MainKind(), len(twos)
	jokerDelta := len(jokers) - 1
	if last.RunLength() == 1 {
		switch {
		case kind <= 3 && n2 >= kind && n2 < 4 && poker.Card2 > last.Value():
			mains = append(mains, candidate{cards: repeat(poker.Card2, kind), value: poker.Card2, delta: n2 - kind})
		case kind == 4 && n2 == 4 && poker.Card2 > last.Value():
			mains = append(mains, candidate{cards: twos.Clone(), value: poker.Card2})
		}
		if kind == 1 {
			for _, j := range jokers {
				if j > last.Value() {
					mains = append(mains, candidate{cards: poker.Cards{j}, value: j, delta: jokerDelta})
				}
			}
		}
	}
	switch last.TakeKind() {
	case poker.TakeSingle:
		if n2 >= 1 && n2 < 4 {
			takes = append(takes, candidate{cards: poker.Cards{poker.Card2}, value: poker.Card2, delta: n2 - 1})
		}
		for _, j := range jokers {
			takes = append(takes, candidate{cards: poker.Cards{j}, value: j, delta: jokerDelta})
		}
	case poker.TakePair:
		if n2 >= 2 && n2 < 4 {
			takes = append(takes, candidate{cards: repeat(poker.Card2, 2), value: poker.Card2, delta: n2 - 2})
		}
	}
	return
}

// 为每个主体贪心地选择带牌, 合并后的动作必须合法且能管上 last
func mergeTakes(mains, takes []candidate, last poker.Combo) []candidate {
	var (
		result []candidate
		seen   = make(map[poker.Set]bool)
		need   = last.TakeCount()
	)
	emit := func(cards poker.Cards, value poker.Card, delta int) {
		set := poker.NewSet(cards)
		if seen[set] {
			return
		}
		combo := poker.Classify(cards)
		if !combo.IsValid() || combo.IsBombOrRocket() || !combo.GreaterThan(last) {
			return
		}
		seen[set] = true
		result = append(result, candidate{cards: combo.Cards(), value: value, delta: delta})
	}
	for _, m := range mains {
		if need == 0 {
			emit(m.cards, m.value, m.delta)
			continue
		}
		var (
			used   = poker.NewSet(m.cards)
			cards  = m.cards.Clone()
			delta  = m.delta
			picked int
			jokers int
		)
		for _, t := range takes {
			if picked == need {
				break
			}
			c := t.cards[0]
			if used.Count(c) > 0 {
				continue
			}
			if c.IsJoker() {
				if jokers > 0 {
					continue
				}
				jokers++
			}
			used = used.Add(poker.NewSet(t.cards))
			cards = append(cards, t.cards...)
			delta += t.delta
			picked++
		}
		if picked == need {
			emit(cards, m.value, delta)
		}
	}
	return result
}
