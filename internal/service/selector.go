package service

import (
	"math"
	"sort"

	"github.com/Quinntyx/hackutd-2025/internal/model"
)

// tieEpsilon is the score distance under which two vehicles count as tied
// and the secondary comparison keys kick in.
const tieEpsilon = 0.001

// luxuryPriceFactor is the "one tier up" sticker price the luxury pick is
// steered toward on ties.
const luxuryPriceFactor = 1.25

// scoredCar bundles a per-request copy of a vehicle with its three variant
// scores. It never outlives one Select call, so concurrent selections
// against the same catalog cannot observe each other's scores.
type scoredCar struct {
	car    model.Car
	index  int // original catalog order, keeps equal-score ordering stable
	normal float64
	budget float64
	luxury float64
}

// Select partitions a catalog into the three curated picks plus a ranked
// remainder. It is deterministic: identical inputs yield identical results.
func Select(cars []model.Car, filter *model.CompoundFilter) (*model.SelectionResult, error) {
	if len(cars) == 0 {
		return nil, model.ErrEmptyCatalog
	}

	scored := make([]*scoredCar, len(cars))
	var mileageSum, yearSum, priceSum float64
	for i, car := range cars {
		sc := &scoredCar{
			car:    car,
			index:  i,
			normal: Score(car, filter, MultiplierNormal),
			budget: Score(car, filter, MultiplierBudget),
			luxury: Score(car, filter, MultiplierLuxury),
		}
		sc.car.Score = sc.normal
		scored[i] = sc
		mileageSum += car.Mileage
		yearSum += float64(car.Year)
		priceSum += car.StickerPrice
	}

	n := float64(len(cars))
	avgMileage := nonZero(mileageSum / n)
	avgYear := nonZero(yearSum / n)

	// Composite tie-break key: lower mileage and newer year both lower the
	// key. A single expression, not cascaded sorts, so a loose tie on the
	// primary score cannot flip the winner between passes.
	tieKey := func(sc *scoredCar) float64 {
		return sc.car.Mileage/avgMileage - float64(sc.car.Year)/avgYear
	}

	byNormal := sortedBy(scored, func(a, b *scoredCar) bool {
		if math.Abs(a.normal-b.normal) > tieEpsilon {
			return a.normal > b.normal
		}
		return tieKey(a) < tieKey(b)
	})
	bestFit := byNormal[0]

	byBudget := sortedBy(scored, func(a, b *scoredCar) bool {
		if math.Abs(a.budget-b.budget) > tieEpsilon {
			return a.budget > b.budget
		}
		return a.car.StickerPrice < b.car.StickerPrice
	})
	budgetPick := firstDistinct(byBudget, bestFit.car.Model)

	luxuryRef := luxuryPriceFactor * (priceSum / n)
	if filter.PriceTarget != nil {
		luxuryRef = luxuryPriceFactor * *filter.PriceTarget
	}
	byLuxury := sortedBy(scored, func(a, b *scoredCar) bool {
		if math.Abs(a.luxury-b.luxury) > tieEpsilon {
			return a.luxury > b.luxury
		}
		return math.Abs(a.car.StickerPrice-luxuryRef) < math.Abs(b.car.StickerPrice-luxuryRef)
	})
	luxuryPick := firstDistinct(byLuxury, bestFit.car.Model, budgetPick.car.Model)

	// Remainder ordering ignores the tie-break key: equal scores keep the
	// original catalog order, so the walk starts from the unsorted slice.
	picked := map[int]bool{bestFit.index: true, budgetPick.index: true, luxuryPick.index: true}
	others := make([]model.Car, 0, len(scored))
	for _, sc := range scored {
		if !picked[sc.index] {
			others = append(others, sc.car)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return others[i].Score > others[j].Score
	})

	return &model.SelectionResult{
		BestFit:      bestFit.car,
		BudgetPick:   budgetPick.car,
		LuxuryPick:   luxuryPick.car,
		OtherOptions: others,
	}, nil
}

// sortedBy returns a stably sorted copy, leaving the input order intact for
// the next pass.
func sortedBy(scored []*scoredCar, less func(a, b *scoredCar) bool) []*scoredCar {
	out := make([]*scoredCar, len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// firstDistinct returns the highest-ranked vehicle whose model differs from
// every excluded model, falling back to the top-ranked candidate when no
// distinct alternative exists (small catalogs degrade gracefully rather
// than erroring).
func firstDistinct(ranked []*scoredCar, exclude ...string) *scoredCar {
	for _, sc := range ranked {
		distinct := true
		for _, m := range exclude {
			if sc.car.Model == m {
				distinct = false
				break
			}
		}
		if distinct {
			return sc
		}
	}
	return ranked[0]
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
