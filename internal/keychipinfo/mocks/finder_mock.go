package mocks

// MockFileFinder はFileFinderのモック実装です
type MockFileFinder struct {
	FoundFiles []string
	Error      error
}

// Find はモック実装です
func (m *MockFileFinder) Find() ([]string, error) {
	if m.Error != nil {
		return nil, m.Error
	}
	return m.FoundFiles, nil
}
