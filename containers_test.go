package aoc

import "testing"

func TestPQ(t *testing.T) {
	for _, tt := range []struct {
		name string
		pq   *PQ[string]
		want []string
	}{
		{"min", MinQueue[string](), []string{"a", "b", "c", "d"}},
		{"max", MaxQueue[string](), []string{"d", "c", "b", "a"}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			items := map[string]*PQI[string]{}
			for i, v := range []string{"c", "a", "d", "b"} {
				items[v] = &PQI[string]{V: v, P: 10 + i}
				tt.pq.Push(items[v])
			}
			// Reorder to a < b < c < d, one item at a time.
			for i, v := range []string{"a", "b", "c", "d"} {
				items[v].P = i
				tt.pq.Update(items[v])
			}
			var got []string
			for tt.pq.Len() > 0 {
				it := tt.pq.Pop()
				if it.Index() != -1 {
					t.Errorf("popped item index = %d, want -1", it.Index())
				}
				got = append(got, it.V)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("pop order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStackQueue(t *testing.T) {
	var s Stack[int]
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}
	if v, _ := s.Peek(); v != 3 {
		t.Errorf("Peek = %v, want 3", v)
	}
	if v, _ := s.Pop(); v != 3 {
		t.Errorf("Pop = %v, want 3", v)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %v, want 2", s.Len())
	}

	q := NewQueue(1)
	var seen []int
	q.While(func(v int) bool {
		seen = append(seen, v)
		if v < 4 {
			q.Push(v + 1)
		}
		return true
	})
	if len(seen) != 4 || seen[3] != 4 {
		t.Errorf("While visited %v, want [1 2 3 4]", seen)
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on empty queue reported ok")
	}
}
