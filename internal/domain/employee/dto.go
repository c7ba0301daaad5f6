package employee

type EmployeeResponse struct {
	ID         string  `json:"id"`
	StaffID    string  `json:"staff_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department *string `json:"department,omitempty"`
	JobTitle   *string `json:"job_title,omitempty"`
	Role       string  `json:"role"`
	BaseSalary *string `json:"base_salary,omitempty"`
	DateJoined string  `json:"date_joined"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

type Filter struct {
	Department *string
	Search     *string
	Page       int
	Limit      int
}

func (f *Filter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

// ToResponse builds the view model without touching the entity.
func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		StaffID:    e.StaffID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		JobTitle:   e.JobTitle,
		Role:       string(e.Role),
		DateJoined: e.DateJoined.Format("2006-01-02"),
	}
	if e.BaseSalary != nil {
		s := e.BaseSalary.StringFixed(2)
		resp.BaseSalary = &s
	}
	return resp
}
