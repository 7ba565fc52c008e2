package handle

type Statistics struct {
	OwnerCount int
	LiveCount  int
	EmptyCount int
}

func (s *Statistics) Clear() {
	s.OwnerCount = 0
	s.LiveCount = 0
	s.EmptyCount = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.OwnerCount += other.OwnerCount
	s.LiveCount += other.LiveCount
	s.EmptyCount += other.EmptyCount
}

func (s *Statistics) AddResource(resource Resource) {
	s.OwnerCount++
	if resource.IsEmpty() {
		s.EmptyCount++
	} else {
		s.LiveCount++
	}
}
