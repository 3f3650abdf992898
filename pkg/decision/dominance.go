package decision

// dominates reports whether a dominates b: at least as good on every
// criterion under its direction, strictly better on at least one.
// Items equal on every criterion do not dominate each other.
func dominates(a, b Item, criteria []Criterion) bool {
	strict := false
	for _, c := range criteria {
		va := a.Values[c.Name]
		vb := b.Values[c.Name]
		if c.Direction == Minimize {
			va, vb = -va, -vb
		}
		if va < vb {
			return false
		}
		if va > vb {
			strict = true
		}
	}
	return strict
}

// paretoFront returns the indices of items not dominated by any other item,
// in input order. Pairwise O(n²), fine for tens to low hundreds of items.
func paretoFront(items []Item, criteria []Criterion) []int {
	front := make([]int, 0, len(items))
	for i := range items {
		dominated := false
		for j := range items {
			if i == j {
				continue
			}
			if dominates(items[j], items[i], criteria) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, i)
		}
	}
	return front
}

// dominatedDetails builds, for every off-front item, the list of front items
// that dominate it and the raw per-criterion advantages of each dominator.
func dominatedDetails(items []Item, criteria []Criterion, front []int) []DominatedItem {
	inFront := make(map[int]bool, len(front))
	for _, i := range front {
		inFront[i] = true
	}

	out := make([]DominatedItem, 0, len(items)-len(front))
	for i, item := range items {
		if inFront[i] {
			continue
		}
		var dominators []Dominator
		for _, j := range front {
			if !dominates(items[j], item, criteria) {
				continue
			}
			var adv []Advantage
			for _, c := range criteria {
				vi := item.Values[c.Name]
				vj := items[j].Values[c.Name]
				better := vj > vi
				if c.Direction == Minimize {
					better = vj < vi
				}
				if better {
					adv = append(adv, Advantage{
						Criterion: c.Name,
						From:      vi,
						To:        vj,
						Delta:     vj - vi,
					})
				}
			}
			dominators = append(dominators, Dominator{
				Index:      j,
				Name:       items[j].Name,
				Advantages: adv,
			})
		}
		out = append(out, DominatedItem{
			Index:       i,
			Name:        item.Name,
			DominatedBy: dominators,
		})
	}
	return out
}

// frontTradeoffs builds the per-item strength/weakness profile and the
// pairwise winners matrix over the front. Only meaningful for front >= 2.
func frontTradeoffs(items []Item, criteria []Criterion, front []int, ranges map[string]valueRange) *FrontTradeoffs {
	if len(front) < 2 {
		return nil
	}

	profiles := make([]FrontProfile, 0, len(front))
	for _, idx := range front {
		p := FrontProfile{Index: idx, Name: items[idx].Name}
		for _, c := range criteria {
			norm := normalize(items[idx].Values[c.Name], ranges[c.Name], c.Direction)
			switch {
			case norm >= 0.8:
				p.Strengths = append(p.Strengths, c.Name)
			case norm <= 0.2:
				p.Weaknesses = append(p.Weaknesses, c.Name)
			}
		}
		profiles = append(profiles, p)
	}

	var pairs []Tradeoff
	for x := 0; x < len(front); x++ {
		for y := x + 1; y < len(front); y++ {
			a, b := items[front[x]], items[front[y]]
			t := Tradeoff{A: a.Name, B: b.Name}
			for _, c := range criteria {
				va, vb := a.Values[c.Name], b.Values[c.Name]
				if c.Direction == Minimize {
					va, vb = -va, -vb
				}
				switch {
				case va > vb:
					t.ABetterAt = append(t.ABetterAt, c.Name)
				case vb > va:
					t.BBetterAt = append(t.BBetterAt, c.Name)
				}
			}
			if len(t.ABetterAt) > 0 || len(t.BBetterAt) > 0 {
				pairs = append(pairs, t)
			}
		}
	}

	return &FrontTradeoffs{Items: profiles, Pairwise: pairs}
}
