package service

import "testing"

func TestDepartmentPath(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Computer Science", "/department-of-computer-science"},
		{"Computer Science & Engineering", "/department-of-computer-science-engineering"},
		{"  Physics  ", "/department-of-physics"},
		{"Mathematics (Applied)", "/department-of-mathematics-applied"},
		{"ENGLISH", "/department-of-english"},
	}
	for _, c := range cases {
		if got := DepartmentPath(c.name); got != c.want {
			t.Errorf("DepartmentPath(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
