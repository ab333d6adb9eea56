package ai

import (
	"sort"

	"github.com/gopherd/log"

	"github.com/gopherd/landlord/poker"
)

// 主动出牌时的拆牌结果, 每一类都按牌面值升序排列
type PlayHand struct {
	Solos    []poker.Cards // 单
	Pairs    []poker.Cards // 对
	Trios    []poker.Cards // 三张不带
	Bombs    []poker.Cards // 炸弹
	SeqSolo5 []poker.Cards // 长度为 5 的顺子
	OtherSeq []poker.Cards // 其它顺子和连对
	Planes   []poker.Cards // 飞机不带翼

	TriosTake  []poker.Cards // 三带N
	BombsTake  []poker.Cards // 四带二
	PlanesTake []poker.Cards // 飞机带翼

	HasRocket bool
	MinSolo   poker.Card // 手牌中最小的牌
	MaxSolo   poker.Card // 手牌中最大的牌
}

// 所有候选动作
func (ph *PlayHand) Actions() []poker.Cards {
	var actions []poker.Cards
	for _, bucket := range [...][]poker.Cards{
		ph.Solos, ph.Pairs, ph.Trios, ph.Bombs, ph.SeqSolo5, ph.OtherSeq, ph.Planes,
		ph.TriosTake, ph.BombsTake, ph.PlanesTake,
	} {
		actions = append(actions, bucket...)
	}
	if ph.HasRocket {
		actions = append(actions, poker.Cards{poker.CardG0, poker.CardG1})
	}
	return actions
}

func (ph *PlayHand) add(action poker.Cards) {
	combo := poker.Classify(action)
	switch combo.Category() {
	case poker.Single:
		ph.Solos = append(ph.Solos, action)
	case poker.Pair:
		ph.Pairs = append(ph.Pairs, action)
	case poker.Trio:
		ph.Trios = append(ph.Trios, action)
	case poker.Bomb:
		ph.Bombs = append(ph.Bombs, action)
	case poker.Straight:
		if combo.RunLength() == 5 {
			ph.SeqSolo5 = append(ph.SeqSolo5, action)
		} else {
			ph.OtherSeq = append(ph.OtherSeq, action)
		}
	case poker.PairStraight:
		ph.OtherSeq = append(ph.OtherSeq, action)
	case poker.Airplane:
		ph.Planes = append(ph.Planes, action)
	case poker.Rocket:
		ph.HasRocket = true
	}
}

func (ph *PlayHand) sort() {
	for _, bucket := range [...][]poker.Cards{
		ph.Solos, ph.Pairs, ph.Trios, ph.Bombs, ph.SeqSolo5, ph.OtherSeq, ph.Planes,
		ph.TriosTake, ph.BombsTake, ph.PlanesTake,
	} {
		sortActions(bucket)
	}
}

// 按牌面值升序, 牌面值相同时短的在前
func sortActions(actions []poker.Cards) {
	sort.SliceStable(actions, func(i, j int) bool {
		vi, vj := poker.Classify(actions[i]).Value(), poker.Classify(actions[j]).Value()
		if vi != vj {
			return vi < vj
		}
		return len(actions[i]) < len(actions[j])
	})
}

// 主动出牌拆牌
func DecomposeForLead(hand poker.Cards, opts Options) PlayHand {
	opts = opts.normalize()
	if opts.Strict {
		hand.MustCheck()
	}
	var ph PlayHand
	if len(hand) == 0 {
		return ph
	}
	ph.MinSolo, ph.MaxSolo = hand.Min(), hand.Max()

	e := newEvaluator(opts)
	low, twos, jokers := poker.PartitionLowerThanTwo(hand)
	for _, block := range poker.SplitIntoRuns(low) {
		for _, action := range e.bestActions(block) {
			ph.add(action)
		}
	}
	if len(twos) > 0 {
		ph.add(twos.Clone())
	}
	switch len(jokers) {
	case 1:
		ph.add(jokers.Clone())
	case 2:
		ph.HasRocket = true
	}
	ph.sort()
	e.attach(&ph, poker.NewSet(hand))

	log.Debug().
		Any("hand", hand).
		Any("solos", len(ph.Solos)).
		Any("pairs", len(ph.Pairs)).
		Any("trios", len(ph.Trios)).
		Any("bombs", len(ph.Bombs)).
		Any("rocket", ph.HasRocket).
		Print("decompose for lead")
	return ph
}

// 块内得分最高的所有动作
func (e *evaluator) bestActions(block poker.Cards) []poker.Cards {
	state := poker.NewSet(block)
	var (
		best  []poker.Cards
		score = minScore
	)
	for _, action := range e.candidates(block) {
		s := e.score(state, action)
		if s > score {
			score = s
			best = best[:0]
		}
		if s == score {
			best = append(best, action)
		}
	}
	return best
}

// 为三张, 炸弹, 飞机选择带牌: 不带, 最小的若干单牌, 最小的若干对子中得分最高的一个
func (e *evaluator) attach(ph *PlayHand, hand poker.Set) {
	for _, trio := range ph.Trios {
		ph.TriosTake = append(ph.TriosTake, e.bestAttachment(hand, trio, ph, 1, true))
	}
	for _, plane := range ph.Planes {
		ph.PlanesTake = append(ph.PlanesTake, e.bestAttachment(hand, plane, ph, len(plane)/3, true))
	}
	for _, bomb := range ph.Bombs {
		if action := e.bestAttachment(hand, bomb, ph, 2, false); len(action) > len(bomb) {
			ph.BombsTake = append(ph.BombsTake, action)
		}
	}
}

func (e *evaluator) bestAttachment(hand poker.Set, main poker.Cards, ph *PlayHand, n int, bare bool) poker.Cards {
	var options []poker.Cards
	if bare {
		options = append(options, main)
	}
	if wings := pickWings(main, ph.Solos, n); wings != nil {
		options = append(options, withWings(main, wings))
	}
	if wings := pickWings(main, ph.Pairs, n); wings != nil {
		options = append(options, withWings(main, wings))
	}
	var (
		best  = main
		score = minScore
	)
	for _, option := range options {
		if !poker.Classify(option).IsValid() {
			continue
		}
		if s := e.score(hand, option); s > score {
			best, score = option, s
		}
	}
	return best
}

// 从升序的 units 中挑选最小的 n 份, 跳过主体中的牌面值和第二张王
func pickWings(main poker.Cards, units []poker.Cards, n int) []poker.Cards {
	mainSet := poker.NewSet(main)
	var (
		wings  []poker.Cards
		jokers int
	)
	for _, unit := range units {
		if len(wings) == n {
			break
		}
		c := unit[0]
		if mainSet.Count(c) > 0 {
			continue
		}
		if c.IsJoker() {
			if jokers > 0 {
				continue
			}
			jokers++
		}
		wings = append(wings, unit)
	}
	if len(wings) < n {
		return nil
	}
	return wings
}

func withWings(main poker.Cards, wings []poker.Cards) poker.Cards {
	action := main.Clone()
	for _, w := range wings {
		action = append(action, w...)
	}
	action.Sort()
	return action
}
