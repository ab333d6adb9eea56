package poker

import "sort"

// 按数量分组的牌面值, 下标 1~4 分别表示数量为 1~4 的牌面值(升序), 下标 0 不使用
type Buckets [5]Cards

// 一次线性扫描, 将有序的牌按相同牌面值的数量分组
// 返回分组, 最大数量以及最大数量分组中的最大牌面值
func SplitByEqualRank(cards Cards) (b Buckets, maxCount int, value Card) {
	if len(cards) == 0 {
		return
	}
	count := 0
	former := cards[0]
	for _, c := range cards {
		if c == former {
			count++
			continue
		}
		b.add(count, former)
		count = 1
		former = c
	}
	b.add(count, former)

	for k := 4; k >= 1; k-- {
		if len(b[k]) > 0 {
			maxCount = k
			value = b[k][len(b[k])-1]
			break
		}
	}
	return
}

func (b *Buckets) add(count int, c Card) {
	if count > 4 {
		count = 4
	}
	b[count] = append(b[count], c)
}

// 后缀分组: 分组 1 同时包含数量为 2 和 3 的牌面值, 分组 2 同时包含数量为 3 的牌面值
// 用于查询 "至少可以当作对子使用的牌面值" 之类的问题. 数量为 4 的牌面值只保留在分组 4
func SuffixBuckets(cards Cards) (b Buckets, maxCount int, value Card) {
	b, maxCount, value = SplitByEqualRank(cards)
	b[2] = mergeRanks(b[2], b[3])
	b[1] = mergeRanks(b[1], b[2])
	return
}

func mergeRanks(dst, src Cards) Cards {
	if len(src) == 0 {
		return dst
	}
	ret := make(Cards, 0, len(dst)+len(src))
	ret = append(ret, dst...)
	ret = append(ret, src...)
	sort.Sort(ret)
	return ret
}

// 将手牌分为三部分: 小于 2 的牌, 2, 大小王
func PartitionLowerThanTwo(hand Cards) (low, twos, jokers Cards) {
	i := sort.Search(len(hand), func(i int) bool { return hand[i] >= Card2 })
	j := sort.Search(len(hand), func(i int) bool { return hand[i] >= CardG0 })
	return hand[:i:i], hand[i:j:j], hand[j:]
}

// 将有序的(不含 2 和王的)牌拆分为若干段牌面值连续的块
// 不同块之间的牌不可能组成同一手牌, 因此可以分别拆牌
func SplitIntoRuns(cards Cards) []Cards {
	if len(cards) == 0 {
		return nil
	}
	var runs []Cards
	start := 0
	for i := 0; i+1 < len(cards); i++ {
		if cards[i]+1 < cards[i+1] {
			runs = append(runs, cards[start:i+1:i+1])
			start = i + 1
		}
	}
	return append(runs, cards[start:len(cards):len(cards)])
}

// 判断牌面值序列是否为长度不小于 minLen 的连续序列, 且不包含 2 和王
func IsConsecutive(ranks Cards, minLen int) bool {
	if len(ranks) == 0 || len(ranks) < minLen || !ranks[len(ranks)-1].IsLowerThanTwo() {
		return false
	}
	base := ranks[0]
	for i, r := range ranks {
		if r != base+Card(i) {
			return false
		}
	}
	return true
}
