package resend

var (
	ContactSubjectForTest    = contactSubject
	RenderContactHTMLForTest = renderContactHTML
)
