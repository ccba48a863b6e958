package staff

import "io"

// Developer is an Employee with a primary programming language. The
// language is free text and may list several, e.g. "C++, Js,React".
type Developer struct {
	Employee
	language string
}

func NewDeveloper(name string, pfNumber, id int, salary float64, language string) *Developer {
	return &Developer{
		Employee: Employee{name: name, pfNumber: pfNumber, id: id, salary: salary},
		language: language,
	}
}

func (d *Developer) Language() string {
	return d.language
}

func (d *Developer) SetLanguage(language string) {
	d.language = language
}

// DisplayDeveloperInfo writes the employee lines and then the language.
func (d *Developer) DisplayDeveloperInfo(w io.Writer) error {
	return d.displayWith(w, "Language", d.language)
}
