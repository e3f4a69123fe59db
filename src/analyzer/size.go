package analyzer

import "fmt"

// DetermineSize picks a clothing size from weight, chest and neck. Each metric
// is classified independently, then the votes [weight, chest, chest, neck] are
// tallied with chest counted twice because chest girth is the primary fit
// driver. On a tied count the chest classification wins.
func DetermineSize(weightKg, chestCm, neckCm float64) SizeInfo {
	weightSize := sizeByWeight(weightKg)
	chestSize := sizeByChest(chestCm)
	neckSize := sizeByNeck(neckCm)

	counts := map[string]int{}
	for _, s := range []string{weightSize, chestSize, chestSize, neckSize} {
		counts[s]++
	}

	// Seed the winner with the chest vote so ties resolve in its favour;
	// only a strictly higher count can displace it.
	category := chestSize
	for _, s := range []string{weightSize, neckSize} {
		if counts[s] > counts[category] {
			category = s
		}
	}

	return SizeInfo{
		Category:       category,
		Ranges:         sizeRanges[category],
		Recommendation: fmt.Sprintf("แนะนำขนาด %s สำหรับเสื้อผ้า และปลอกคอ", category),
	}
}

func sizeByWeight(kg float64) string {
	switch {
	case kg < 2.5:
		return "XS"
	case kg < 4:
		return "S"
	case kg < 6:
		return "M"
	case kg < 8.5:
		return "L"
	default:
		return "XL"
	}
}

func sizeByChest(cm float64) string {
	switch {
	case cm < 24:
		return "XS"
	case cm < 32:
		return "S"
	case cm < 38:
		return "M"
	case cm < 45:
		return "L"
	default:
		return "XL"
	}
}

func sizeByNeck(cm float64) string {
	switch {
	case cm < 15:
		return "XS"
	case cm < 20:
		return "S"
	case cm < 24:
		return "M"
	case cm < 28:
		return "L"
	default:
		return "XL"
	}
}
