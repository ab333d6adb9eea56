package ai

import (
	"fmt"
	"strings"

	"github.com/gopherd/doge/graphviz"

	"github.com/gopherd/landlord/poker"
)

// 将主动出牌的拆牌过程输出为 .dot 文件
// 每个连续块下列出所有候选动作及其得分, 得分最高的动作用红色边连接
// 拷贝文件内容然后在 http://viz-js.com/ 中粘贴到左侧输入框就可以可视化的查看
func WriteDot(filename, name string, hand poker.Cards, opts Options) error {
	graph := graphviz.New(name, graphviz.Directed)
	var newEntity = func(id, label, color string) *graphviz.Entity {
		attr := fmt.Sprintf("[shape=box,color=%s,label=\"%s\"]", color, label)
		return graphviz.NewEntity(id, attr)
	}
	var newEdge = func(e1, e2 *graphviz.Entity, selected bool) {
		attr := ""
		if selected {
			attr = `[color=red]`
		}
		graph.Add(e1, e2, attr)
	}

	root := newEntity("hand", "hand: "+viewOf(hand), "black")
	e := newEvaluator(opts.normalize())
	low, _, _ := poker.PartitionLowerThanTwo(hand)
	for i, block := range poker.SplitIntoRuns(low) {
		state := poker.NewSet(block)
		from := newEntity(fmt.Sprintf("b_%d", i), "block: "+viewOf(block), "blue")
		newEdge(root, from, false)

		candidates := e.candidates(block)
		scores := make([]int, len(candidates))
		best := minScore
		for j, action := range candidates {
			scores[j] = e.score(state, action)
			best = max(best, scores[j])
		}
		for j, action := range candidates {
			label := fmt.Sprintf("%s\\lscore: %d\\l", viewOf(action), scores[j])
			to := newEntity(fmt.Sprintf("b_%d_%d", i, j), label, "blue")
			newEdge(from, to, scores[j] == best)
		}
	}
	return graph.WriteFile(filename)
}

func viewOf(cards poker.Cards) string {
	return strings.TrimSpace(cards.String())
}
