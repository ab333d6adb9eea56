package poker

import (
	"bytes"

	"github.com/gopherd/doge/bits"
)

// 按位表示的牌集合(不区分花色)
// 每 4 bits 为一个块, 表示一个牌面值的数量, 数量 n 总是占用块内最低的 n 位
// 从最低位开始的 15 个块(60 bits) 分别表示 3,4,...,A,2,小王,大王
//
// 1 1 1 1 1 1 1 1
// ------- ------- (第1个8位)
//    4       3
//
// ...............
//
// 1 1 1 1 1 1 1 1
// ------- ------- (第8个8位)
//  保留     大王
type Set uint64

const EmptySet Set = 0

const numValidBits = NumRank * 4

func shiftOf(c Card) uint { return uint(c-MinCard) << 2 }

func NewSet(cards Cards) Set {
	var s Set
	for _, c := range cards {
		s = s.WithCount(c, s.Count(c)+1)
	}
	return s
}

// 4 张牌面值为 c 的牌组成的集合
func NewBomb(c Card) Set {
	return Set(uint64(0xF) << shiftOf(c))
}

var rocketSet = NewSet(Cards{CardG0, CardG1})

func (s Set) raw() uint64 { return uint64(s) }

// 牌的总张数
func (s Set) Len() int { return bits.Count64(s.raw()) }

func (s Set) Empty() bool { return s == EmptySet }

// 牌面值为 c 的牌的数量
func (s Set) Count(c Card) int {
	return bits.Count8(uint8(s>>shiftOf(c)) & 0xF)
}

// 将牌面值 c 的数量设置为 n (0~4)
func (s Set) WithCount(c Card, n int) Set {
	if n < 0 {
		n = 0
	} else if n > 4 {
		n = 4
	}
	shift := shiftOf(c)
	s &^= Set(0xF) << shift
	s |= Set((1<<uint(n))-1) << shift
	return s
}

// 判断是否包含另一个集合(多重集意义下)
func (s Set) Contains(s2 Set) bool { return s&s2 == s2 }

// 删除子集, s2 不是 s 的子集时返回 false
func (s Set) Remove(s2 Set) (Set, bool) {
	if !s.Contains(s2) {
		return s, false
	}
	return (s &^ s2).Normalize(), true
}

// 合并两个集合, 单个牌面值最多保留 4 张
func (s Set) Add(s2 Set) Set {
	ret := s
	s2.Walk(func(c Card, n int) bool {
		ret = ret.WithCount(c, ret.Count(c)+n)
		return false
	})
	return ret
}

// 正则化, 让每个块内的位都集中到低位
func (s Set) Normalize() Set {
	var ret Set
	for i := 0; i < 8; i++ {
		offset := uint(i) << 3
		ret |= Set(bits.Normalize4(uint8((s>>offset)&0xFF))) << offset
	}
	return ret
}

func (s Set) IsRocket() bool { return s == rocketSet }

func (s Set) IsBomb() bool {
	if s.Len() != 4 {
		return false
	}
	for c := MinCard; c <= Card2; c++ {
		if s == NewBomb(c) {
			return true
		}
	}
	return false
}

// 按牌面值遍历非空块
type Visitor func(c Card, n int) (terminate bool)

func (s Set) Walk(visitor Visitor) bool {
	for i := uint(0); i+4 <= uint(numValidBits); i += 4 {
		n := bits.Count8(uint8(s>>i) & 0xF)
		if n == 0 {
			continue
		}
		if visitor(Card(i>>2)+MinCard, n) {
			return true
		}
	}
	return false
}

// 最小牌面值, 空集返回 InvalidCard
func (s Set) MinValue() Card {
	ret := InvalidCard
	s.Walk(func(c Card, n int) bool {
		ret = c
		return true
	})
	return ret
}

func (s Set) Cards() Cards {
	cards := make(Cards, 0, s.Len())
	s.Walk(func(c Card, n int) bool {
		for i := 0; i < n; i++ {
			cards = append(cards, c)
		}
		return false
	})
	return cards
}

func (s Set) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	count := 0
	s.Walk(func(c Card, n int) bool {
		for i := 0; i < n; i++ {
			if count > 0 {
				buf.WriteByte(',')
			}
			count++
			buf.WriteString(c.String())
		}
		return false
	})
	buf.WriteByte(']')
	return buf.String()
}
