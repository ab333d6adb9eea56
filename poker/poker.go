package poker

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrUnknownCard = errors.New("unknown card")

// 牌面值, 不区分花色
// 1~13 分别表示 3,4,...,K,A,2; 14 和 15 分别表示小王和大王
type Card uint8

const (
	InvalidCard Card = 0

	Card3  Card = 1
	Card4  Card = 2
	Card5  Card = 3
	Card6  Card = 4
	Card7  Card = 5
	Card8  Card = 6
	Card9  Card = 7
	Card10 Card = 8
	CardJ  Card = 9
	CardQ  Card = 10
	CardK  Card = 11
	CardA  Card = 12
	Card2  Card = 13
	CardG0 Card = 14
	CardG1 Card = 15
)

const (
	MinCard = Card3
	MaxCard = CardG1
	NumRank = int(MaxCard)
)

var cardViews = [...]string{
	Card3: "3 ", Card4: "4 ", Card5: "5 ", Card6: "6 ", Card7: "7 ",
	Card8: "8 ", Card9: "9 ", Card10: "10 ", CardJ: "J ", CardQ: "Q ",
	CardK: "K ", CardA: "A ", Card2: "2 ", CardG0: "g ", CardG1: "G ",
}

var viewToCard = map[string]Card{
	"3": Card3, "4": Card4, "5": Card5, "6": Card6, "7": Card7,
	"8": Card8, "9": Card9, "10": Card10, "J": CardJ, "Q": CardQ,
	"K": CardK, "A": CardA, "2": Card2, "g": CardG0, "G": CardG1,
}

func (c Card) Valid() bool { return c >= MinCard && c <= MaxCard }

func (c Card) IsJoker() bool { return c == CardG0 || c == CardG1 }

// 2 和王不能参与顺子、连对和飞机
func (c Card) IsLowerThanTwo() bool { return c >= MinCard && c < Card2 }

// 控制台视图, 每张牌后跟一个空格
func (c Card) View() string {
	if !c.Valid() {
		return "- "
	}
	return cardViews[c]
}

func (c Card) String() string {
	return strings.TrimSuffix(c.View(), " ")
}

func ParseCard(s string) (Card, error) {
	if c, ok := viewToCard[s]; ok {
		return c, nil
	}
	return InvalidCard, fmt.Errorf("%w: %q", ErrUnknownCard, s)
}

// 解析空白分隔的牌, 结果已排序
func ParseCards(s string) (Cards, error) {
	fields := strings.Fields(s)
	cards := make(Cards, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	cards.Sort()
	return cards, nil
}

// 解析已知合法的牌, 出错时 panic
func MustParseCards(s string) Cards {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// 按牌面值升序排列的一组牌
type Cards []Card

func (cs Cards) Len() int           { return len(cs) }
func (cs Cards) Less(i, j int) bool { return cs[i] < cs[j] }
func (cs Cards) Swap(i, j int)      { cs[i], cs[j] = cs[j], cs[i] }

func (cs Cards) Sort() { sort.Sort(cs) }

func (cs Cards) IsSorted() bool { return sort.IsSorted(cs) }

func (cs Cards) Clone() Cards {
	if cs == nil {
		return nil
	}
	ret := make(Cards, len(cs))
	copy(ret, cs)
	return ret
}

func (cs Cards) Empty() bool { return len(cs) == 0 }

// 某个牌面值的数量
func (cs Cards) Count(c Card) int {
	n := 0
	for _, x := range cs {
		if x == c {
			n++
		}
	}
	return n
}

func (cs Cards) Min() Card {
	if len(cs) == 0 {
		return InvalidCard
	}
	return cs[0]
}

func (cs Cards) Max() Card {
	if len(cs) == 0 {
		return InvalidCard
	}
	return cs[len(cs)-1]
}

// 判断 sub 是否为 cs 的子多重集
func (cs Cards) Contains(sub Cards) bool {
	return NewSet(cs).Contains(NewSet(sub))
}

// 从 cs 中删除 sub, sub 不是子集时返回 false
func (cs Cards) Remove(sub Cards) (Cards, bool) {
	set, ok := NewSet(cs).Remove(NewSet(sub))
	if !ok {
		return cs, false
	}
	return set.Cards(), true
}

func (cs Cards) Equal(cs2 Cards) bool {
	if len(cs) != len(cs2) {
		return false
	}
	for i := range cs {
		if cs[i] != cs2[i] {
			return false
		}
	}
	return true
}

// 检查牌组是否满足前置条件: 升序, 牌面值合法, 普通牌最多4张, 王最多1张
func (cs Cards) Check() error {
	var counts [NumRank + 1]int
	for i, c := range cs {
		if !c.Valid() {
			return fmt.Errorf("card %d out of range at index %d", c, i)
		}
		if i > 0 && cs[i-1] > c {
			return fmt.Errorf("cards not sorted at index %d", i)
		}
		counts[c]++
		if counts[c] > 4 || (c.IsJoker() && counts[c] > 1) {
			return fmt.Errorf("too many %v", c)
		}
	}
	return nil
}

// 不满足前置条件时 panic
func (cs Cards) MustCheck() {
	if err := cs.Check(); err != nil {
		panic(fmt.Sprintf("malformed cards %v: %v", []Card(cs), err))
	}
}

func (cs Cards) String() string {
	var buf bytes.Buffer
	for _, c := range cs {
		buf.WriteString(c.View())
	}
	return buf.String()
}

// 表格形式输出
func FormatCards(cards Cards) string {
	var head bytes.Buffer
	var body bytes.Buffer
	var foot bytes.Buffer
	head.WriteString("┏")
	body.WriteString("┃")
	foot.WriteString("┗")
	for i, c := range cards {
		if i > 0 {
			head.WriteString("┳")
			body.WriteString("┃")
			foot.WriteString("┻")
		}
		s := c.String()
		head.WriteString(strings.Repeat("━", len(s)))
		body.WriteString(s)
		foot.WriteString(strings.Repeat("━", len(s)))
	}
	head.WriteString("┓")
	body.WriteString("┃")
	foot.WriteString("┛")
	return head.String() + "\n" + body.String() + "\n" + foot.String()
}

// 生成一副完整的54张牌, 按升序排列
func NewDeck() Cards {
	deck := make(Cards, 0, 54)
	for c := Card3; c <= Card2; c++ {
		deck = append(deck, c, c, c, c)
	}
	return append(deck, CardG0, CardG1)
}
