package keywords

type MatchersCreator interface {
	CreateMatchers() (Matchers, error)
}

type DictionariesCreator interface {
	CreateDictionaries() (*Dictionaries, error)
}
