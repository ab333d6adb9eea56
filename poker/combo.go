package poker

import (
	"fmt"
	"strings"
)

// 牌型
type Category int

const (
	Pass    Category = iota // 不出
	Invalid                 // 非法

	Single         // 单张
	Pair           // 对子
	Trio           // 三张不带
	TrioWithSingle // 三带一
	TrioWithPair   // 三带二

	Straight            // 顺子
	PairStraight        // 连对
	Airplane            // 飞机不带翼
	AirplaneWithSingles // 飞机带小翼
	AirplaneWithPairs   // 飞机带大翼

	Bomb             // 炸弹
	FourWithTwo      // 四带两单
	FourWithTwoPairs // 四带两对

	Rocket // 王炸
)

var categoryNames = map[Category]string{
	Pass:                "pass",
	Invalid:             "invalid",
	Single:              "single",
	Pair:                "pair",
	Trio:                "trio",
	TrioWithSingle:      "trio+single",
	TrioWithPair:        "trio+pair",
	Straight:            "straight",
	PairStraight:        "pair-straight",
	Airplane:            "airplane",
	AirplaneWithSingles: "airplane+singles",
	AirplaneWithPairs:   "airplane+pairs",
	Bomb:                "bomb",
	FourWithTwo:         "four+two",
	FourWithTwoPairs:    "four+two-pairs",
	Rocket:              "rocket",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// 带牌种类
type TakeKind int

const (
	TakeNone   TakeKind = 0
	TakeSingle TakeKind = 1
	TakePair   TakeKind = 2
)

const (
	// 打包键的特殊取值
	RocketKey  = 0
	InvalidKey = -1
	PassKey    = -2
)

// 一手牌. 构造后不可变
type Combo struct {
	cards     Cards
	category  Category
	value     Card
	runLength int
	takeKind  TakeKind
}

// 不出
func PassCombo() Combo { return Combo{category: Pass} }

// 判定一组牌的牌型, cards 可以无序
func Classify(cards Cards) Combo {
	sorted := cards.Clone()
	sorted.Sort()
	combo := Combo{cards: sorted, category: Invalid}
	if len(sorted) == 0 {
		combo.category = Pass
		return combo
	}
	for i, c := range sorted {
		if !c.Valid() || (c.IsJoker() && i > 0 && sorted[i-1] == c) || (i >= 4 && sorted[i-4] == c) {
			return combo
		}
	}

	// N带0: 单, 对, 三, 炸弹
	if sorted[0] == sorted[len(sorted)-1] {
		if len(sorted) > 4 {
			return combo
		}
		combo.category = [...]Category{Invalid, Single, Pair, Trio, Bomb}[len(sorted)]
		combo.value = sorted[0]
		combo.runLength = 1
		return combo
	}

	// 王炸
	if len(sorted) == 2 {
		if sorted[0] == CardG0 && sorted[1] == CardG1 {
			combo.category = Rocket
			combo.value = CardG1
			combo.runLength = 1
		}
		return combo
	}

	b, maxCount, value := SplitByEqualRank(sorted)
	combo.value = value
	switch maxCount {
	case 1:
		classifyOne(&combo, b)
	case 2:
		classifyTwo(&combo, b)
	case 3:
		classifyThree(&combo, b)
	case 4:
		classifyFour(&combo, b)
	}
	if combo.category == Invalid {
		combo.value = InvalidCard
	}
	return combo
}

func classifyOne(combo *Combo, b Buckets) {
	if IsConsecutive(b[1], 5) {
		combo.category = Straight
		combo.runLength = len(b[1])
	}
}

func classifyTwo(combo *Combo, b Buckets) {
	if len(b[1]) == 0 && IsConsecutive(b[2], 3) {
		combo.category = PairStraight
		combo.runLength = len(b[2])
	}
}

func classifyThree(combo *Combo, b Buckets) {
	run := len(b[3])
	if run != 1 && !IsConsecutive(b[3], 2) {
		return
	}
	singles, pairs := len(b[1]), len(b[2])
	switch {
	case singles == 0 && pairs == 0:
		combo.category = pick(run, Trio, Airplane)
	case singles == 0 && pairs == run:
		combo.category = pick(run, TrioWithPair, AirplaneWithPairs)
		combo.takeKind = TakePair
	case singles+pairs*2 == run && !hasRocket(b[1]):
		combo.category = pick(run, TrioWithSingle, AirplaneWithSingles)
		combo.takeKind = TakeSingle
	default:
		return
	}
	combo.runLength = run
}

func classifyFour(combo *Combo, b Buckets) {
	if len(b[3]) > 0 || len(b[4]) != 1 {
		return
	}
	singles, pairs := len(b[1]), len(b[2])
	switch {
	case singles+pairs*2 == 2 && !hasRocket(b[1]):
		combo.category = FourWithTwo
		combo.takeKind = TakeSingle
	case singles == 0 && pairs == 2:
		combo.category = FourWithTwoPairs
		combo.takeKind = TakePair
	default:
		return
	}
	combo.runLength = 1
}

func pick(run int, one, many Category) Category {
	if run == 1 {
		return one
	}
	return many
}

// 大小王不能同时作为带牌
func hasRocket(singles Cards) bool {
	n := len(singles)
	return n >= 2 && singles[n-2] == CardG0 && singles[n-1] == CardG1
}

func (c Combo) Cards() Cards         { return c.cards }
func (c Combo) Category() Category   { return c.category }
func (c Combo) Value() Card          { return c.value }
func (c Combo) RunLength() int       { return c.runLength }
func (c Combo) TakeKind() TakeKind   { return c.takeKind }
func (c Combo) Len() int             { return len(c.cards) }
func (c Combo) IsValid() bool        { return c.category != Invalid }
func (c Combo) IsPass() bool         { return c.category == Pass }
func (c Combo) IsRocket() bool       { return c.category == Rocket }
func (c Combo) IsBomb() bool         { return c.category == Bomb }
func (c Combo) IsBombOrRocket() bool { return c.IsBomb() || c.IsRocket() }

// 主体部分每个牌面值的张数: 1 单/顺子, 2 对/连对, 3 三张/飞机, 4 炸弹/四带二
func (c Combo) MainKind() int {
	switch c.category {
	case Single, Straight:
		return 1
	case Pair, PairStraight:
		return 2
	case Trio, TrioWithSingle, TrioWithPair, Airplane, AirplaneWithSingles, AirplaneWithPairs:
		return 3
	case Bomb, FourWithTwo, FourWithTwoPairs:
		return 4
	}
	return 0
}

// 带牌的份数, 每份为一张单牌或一个对子
func (c Combo) TakeCount() int {
	if c.takeKind == TakeNone {
		return 0
	}
	if c.MainKind() == 4 {
		return 2
	}
	return c.runLength
}

// 打包后的整数键, 用于序列化
// key % 100 为比较大小的牌面值, key / 100 % 10 为主体张数,
// key / 1000 % 10 为连续长度, key / 10000 为带牌种类
func (c Combo) Key() int {
	switch c.category {
	case Pass:
		return PassKey
	case Invalid:
		return InvalidKey
	case Rocket:
		return RocketKey
	}
	return int(c.takeKind)*10000 + c.runLength*1000 + c.MainKind()*100 + int(c.value)
}

// 判断 c 能否管上 other
// 王炸最大; 炸弹大于任何非炸弹; 其它情况要求牌型和长度都相同且牌面值更大
func (c Combo) GreaterThan(other Combo) bool {
	if !c.IsValid() || c.IsPass() || !other.IsValid() || other.IsPass() {
		return false
	}
	if c.IsRocket() || other.IsRocket() {
		return !other.IsRocket()
	}
	if c.IsBomb() {
		return !other.IsBomb() || c.value > other.value
	}
	return c.category == other.category &&
		c.runLength == other.runLength &&
		c.value > other.value
}

func (c Combo) String() string {
	if c.category == Pass {
		return "{pass}"
	}
	return fmt.Sprintf("{%v: %s}", c.category, strings.TrimSpace(c.cards.String()))
}
