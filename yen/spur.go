package yen

import (
	"slices"

	"github.com/katalvlaran/lvyen/bfs"
)

// expand runs one spur search per vertex of last except its final one and
// pushes every spliced candidate into the pool. The graph is identical
// before and after each spur search.
func (s *search) expand(last []int) error {
	for j := 0; j < len(last)-1; j++ {
		cand, err := s.spur(last, j)
		if err != nil {
			return err
		}
		if cand == nil {
			continue
		}
		s.res.Generated++
		s.pool.push(cand)
	}

	return nil
}

// spur deviates from last at index j: root = last[:j+1], spur node = last[j].
//
// Inside one scoped edit it hides
//   - the edge (p[j], p[j+1]) of every confirmed p sharing root, so no
//     confirmed path is produced again;
//   - every edge of root[:j], so the spur path cannot re-enter the prefix;
//
// then searches spur node → end and splices root[:j] with the spur path.
// The deferred Restore runs on every exit, errors included.
func (s *search) spur(last []int, j int) ([]int, error) {
	root := last[:j+1]
	spurNode := last[j]

	edit := s.graph.BeginEdit()
	defer edit.Restore()

	for _, p := range s.confirmed {
		if len(p) > j+1 && slices.Equal(p[:j+1], root) {
			edit.Suppress(p[j], p[j+1])
		}
	}
	for _, v := range root[:j] {
		edit.Isolate(v)
	}

	s.res.Spurs++
	spurPath, err := bfs.ShortestPath(s.graph, spurNode, s.end, bfs.WithContext(s.opts.Ctx))
	if err != nil || spurPath == nil {
		return nil, err
	}

	total := make([]int, 0, j+len(spurPath))
	total = append(total, root[:j]...)
	total = append(total, spurPath...)

	return total, nil
}
