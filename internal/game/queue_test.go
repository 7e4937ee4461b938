package game

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := newQueue[int](2)
	if _, ok := q.Front(); ok {
		t.Fatal("empty queue has a front")
	}
	if _, ok := q.PopFront(); ok {
		t.Fatal("empty queue popped")
	}

	// Wrap around and grow a few times
	next, want := 0, 0
	for round := 0; round < 5; round++ {
		for i := 0; i < 3+round; i++ {
			q.PushBack(next)
			next++
		}
		for i := 0; i < 2; i++ {
			v, ok := q.PopFront()
			if !ok || v != want {
				t.Fatalf("popped %v %v, expected %v", v, ok, want)
			}
			want++
		}
	}

	if q.Len() != next-want {
		t.Fatalf("len %v, expected %v", q.Len(), next-want)
	}

	seen := []int{}
	q.Each(func(v int) { seen = append(seen, v) })
	for i, v := range seen {
		if v != want+i {
			t.Fatalf("each visited %v, expected order from %v", seen, want)
		}
	}

	if v, _ := q.Front(); v != want {
		t.Errorf("front %v, expected %v", v, want)
	}
}
