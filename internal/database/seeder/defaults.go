package seeder

func Defaults() []Seeder {
	return []Seeder{
		DimensionsSeeder{},
		OccupationsSeeder{},
		CoursesSeeder{},
	}
}
