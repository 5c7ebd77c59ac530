package web

// credentialsForm is posted by both the login and the registration forms.
type credentialsForm struct {
	Username string `schema:"username" validate:"max=64"`
	Password string `schema:"password" validate:"max=72"`
	Next     string `schema:"next" validate:"localpath"`
}

type searchForm struct {
	Search string `schema:"Search" validate:"max=128"`
}

type addForm struct {
	Destination string `schema:"destination" validate:"max=128"`
	ReturnTo    string `schema:"return_to"`
}

type flashQuery struct {
	Msg  string `schema:"msg" validate:"max=256"`
	Err  string `schema:"err" validate:"max=256"`
	Next string `schema:"next" validate:"localpath"`
}
