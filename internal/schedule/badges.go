package schedule

import "vitaplan/internal/models"

// Badge is the presentation mapping for a category. Kept out of the domain
// model; clients are free to ignore it.
type Badge struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var badges = map[models.Category]Badge{
	models.CategoryWorkout: {Icon: "🏋", Color: "#e74c3c"},
	models.CategoryStudy:   {Icon: "📚", Color: "#3498db"},
	models.CategorySleep:   {Icon: "🛏", Color: "#9b59b6"},
	models.CategoryMeal:    {Icon: "🍽", Color: "#27ae60"},
	models.CategoryBreak:   {Icon: "☕", Color: "#f39c12"},
}

func BadgeFor(c models.Category) Badge {
	if b, ok := badges[c]; ok {
		return b
	}
	return Badge{Icon: "•", Color: "#95a5a6"}
}
