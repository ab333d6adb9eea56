package ai

import (
	"fmt"

	"github.com/gopherd/doge/math/mathutil"

	"github.com/gopherd/landlord/poker"
)

// 牌型的形状
type Shape struct {
	// 主干部分的宽和高,比如
	// 单张的 width=1, height=1
	// 对子的 width=1, height=2
	// 334455 的 width=3, height=2
	// 3334 的 width=1, height=3
	// 33344456 的 width=2, height=3
	// 小王+大王 的 width=2, height=1
	Width, Height int8

	// 带牌部分的宽和高,比如
	// 333 的 kickerWidth=0, kickerHeight=0
	// 3334 的 kickerWidth=1, kickerHeight=1
	// 33344 的 kickerWidth=1, kickerHeight=2
	// 555567 的 kickerWidth=2, kickerHeight=1
	// 55556677 的 kickerWidth=2, kickerHeight=2
	KickerWidth, KickerHeight int8
}

func (s Shape) String() string {
	return fmt.Sprintf("{w: %d, h: %d, kw: %d, kh: %d}", s.Width, s.Height, s.KickerWidth, s.KickerHeight)
}

func (s Shape) hasKicker() bool { return s.KickerWidth > 0 && s.KickerHeight > 0 }

func (s Shape) isRocket() bool { return s.Width == 2 && s.Height == 1 && !s.hasKicker() }

func (s Shape) Len() int {
	return int(s.Width)*int(s.Height) + int(s.KickerWidth)*int(s.KickerHeight)
}

// 一手牌的形状, 不出和非法牌型返回零值
func ShapeOf(c poker.Combo) Shape {
	run := int8(c.RunLength())
	switch c.Category() {
	case poker.Single, poker.Pair, poker.Trio, poker.Bomb:
		return Shape{1, int8(c.MainKind()), 0, 0}
	case poker.Straight, poker.PairStraight, poker.Airplane:
		return Shape{run, int8(c.MainKind()), 0, 0}
	case poker.TrioWithSingle, poker.TrioWithPair, poker.AirplaneWithSingles, poker.AirplaneWithPairs:
		return Shape{run, 3, run, int8(c.TakeKind())}
	case poker.FourWithTwo, poker.FourWithTwoPairs:
		return Shape{1, 4, 2, int8(c.TakeKind())}
	case poker.Rocket:
		return Shape{2, 1, 0, 0}
	}
	return Shape{}
}

// 所有合法的形状, 主动出牌时按顺序匹配
var shapes []Shape

func init() {
	shapes = append(shapes, Shape{1, 1, 0, 0})
	for w := int8(5); w <= 12; w++ {
		shapes = append(shapes, Shape{w, 1, 0, 0})
	}
	shapes = append(shapes, Shape{1, 2, 0, 0})
	for w := int8(3); w <= 10; w++ {
		shapes = append(shapes, Shape{w, 2, 0, 0})
	}
	for w := int8(1); w <= 6; w++ {
		shapes = append(shapes, Shape{w, 3, 0, 0})
	}
	for w := int8(1); w <= 5; w++ {
		shapes = append(shapes, Shape{w, 3, w, 1})
	}
	for w := int8(1); w <= 4; w++ {
		shapes = append(shapes, Shape{w, 3, w, 2})
	}
	shapes = append(shapes,
		Shape{1, 4, 2, 1},
		Shape{1, 4, 2, 2},
		Shape{1, 4, 0, 0},
		Shape{2, 1, 0, 0},
	)
}

// 从 from 中取 n 张牌面值为 value 的牌, 数量不足时返回空集
func takeByValue(from poker.Set, value poker.Card, n int) poker.Set {
	if from.Count(value) < n {
		return poker.EmptySet
	}
	return poker.EmptySet.WithCount(value, n)
}

// 匹配所有形状为 w*h 且最小牌面值大于 begin 的主干
func matchBody(hand poker.Set, w, h int8, begin poker.Card) []poker.Set {
	var (
		ret   []poker.Set
		start = poker.InvalidCard
		cur   = poker.EmptySet
	)
	begin = begin + 1
	for value := begin; value <= poker.MaxCard; value++ {
		if value < poker.MinCard {
			continue
		}
		if w > 1 && value >= poker.Card2 {
			break
		}
		if h == 4 && value > poker.Card2 {
			break
		}
		if added := takeByValue(hand, value, int(h)); !added.Empty() {
			cur |= added
			if start == poker.InvalidCard {
				start = value
			}
			if int(value-start+1) == int(w) {
				ret = append(ret, cur)
				offset := uint(start-poker.MinCard+1) << 2
				cur = (cur >> offset) << offset
				start++
			}
		} else {
			// 中断了,重新开始
			cur = poker.EmptySet
			start = poker.InvalidCard
		}
	}
	return ret
}

type matcher struct {
	hand  poker.Set
	last  poker.Combo
	limit int
	ret   []poker.Combo
}

func (m *matcher) full() bool { return m.limit > 0 && len(m.ret) >= m.limit }

func (m *matcher) add(set poker.Set) {
	combo := poker.Classify(set.Cards())
	if !combo.IsValid() {
		return
	}
	if !m.last.IsPass() && !combo.GreaterThan(m.last) {
		return
	}
	m.ret = append(m.ret, combo)
}

// 匹配指定形状, strict 为 false 时额外匹配炸弹和王炸
func (m *matcher) match(shape Shape, begin poker.Card, strict bool) {
	if shape.isRocket() {
		if rocket := poker.NewSet(poker.Cards{poker.CardG0, poker.CardG1}); m.hand.Contains(rocket) {
			m.add(rocket)
		}
		return
	}
	for _, body := range matchBody(m.hand, shape.Width, shape.Height, begin) {
		if !shape.hasKicker() {
			m.add(body)
		} else {
			m.matchKickers(shape, body)
		}
		if m.full() {
			return
		}
	}

	// 非严格模式尝试匹配炸弹和火箭
	if strict {
		return
	}
	if shape != (Shape{1, 4, 0, 0}) {
		for value := poker.MinCard; value <= poker.Card2; value++ {
			if body := takeByValue(m.hand, value, 4); !body.Empty() {
				m.add(body)
				if m.full() {
					return
				}
			}
		}
	}
	m.match(Shape{2, 1, 0, 0}, poker.InvalidCard, true)
}

// 选取带牌: 每个牌面值可以提供若干份带牌, 然后从所有份数中组合出 kickerWidth 份
func (m *matcher) matchKickers(shape Shape, body poker.Set) {
	var (
		kickers   [][]poker.Set
		nums      []int
		prevValue = poker.InvalidCard
		remain, _ = m.hand.Remove(body)
		h         = int(shape.KickerHeight)
	)
	for value := poker.MinCard; value <= poker.MaxCard; {
		if body.Count(value) > 0 {
			value++
			continue
		}
		added := takeByValue(remain, value, h)
		if !added.Empty() {
			if value == prevValue {
				kickers[len(kickers)-1] = append(kickers[len(kickers)-1], added)
				nums[len(nums)-1]++
			} else {
				prevValue = value
				kickers = append(kickers, []poker.Set{added})
				nums = append(nums, 1)
			}
			remain, _ = remain.Remove(added)
		}
		if added.Empty() || remain.Count(value) < h {
			value++
		}
	}
	// 追加一个空组, MultiCombSet 不会在最后一组上只取一部分
	kickers = append(kickers, nil)
	nums = append(nums, 0)
	// 逆序遍历使较小的带牌先出现
	combs := mathutil.MultiCombSet(nums, int(shape.KickerWidth))
	for k := len(combs) - 1; k >= 0; k-- {
		ins := combs[k]
		var kicker poker.Set
		for i, n := range ins {
			for j := 0; j < n; j++ {
				kicker = kicker.Add(kickers[i][j])
			}
		}
		m.add(body.Add(kicker))
		if m.full() {
			return
		}
	}
}

// 枚举 hand 中所有能管上 last 的出牌, last 为不出时枚举所有合法出牌
// limit 不大于 0 时不限制数量
func Match(hand poker.Cards, last poker.Combo, opts Options, limit int) []poker.Combo {
	if opts.Strict {
		hand.MustCheck()
	}
	m := &matcher{hand: poker.NewSet(hand), last: last, limit: limit}
	if !last.IsValid() {
		return nil
	}
	if last.IsPass() {
		for _, shape := range shapes {
			m.match(shape, poker.InvalidCard, true)
			if m.full() {
				break
			}
		}
		return m.ret
	}
	m.match(ShapeOf(last), bodyMin(last), false)
	return m.ret
}

// 能否管上 last
func CanFollow(hand poker.Cards, last poker.Combo) bool {
	return len(Match(hand, last, DefaultOptions, 1)) > 0
}

// 主干部分的最小牌面值
func bodyMin(c poker.Combo) poker.Card {
	if c.IsRocket() {
		return poker.CardG0
	}
	return c.Value() - poker.Card(c.RunLength()-1)
}

// 同形状中牌面值最大的出牌, 带牌取最小的组合
func maxBeat(hand poker.Cards, last poker.Combo) (poker.Combo, bool) {
	m := &matcher{hand: poker.NewSet(hand), last: last}
	m.match(ShapeOf(last), bodyMin(last), true)
	var (
		best  poker.Combo
		found bool
	)
	for _, c := range m.ret {
		if !found || c.Value() > best.Value() {
			best, found = c, true
		}
	}
	return best, found
}
