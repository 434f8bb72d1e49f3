package email

// cartAbandonmentTextTemplate is the plain-text alternative for cart abandonment emails
const cartAbandonmentTextTemplate = `{{.Headline}}
{{if .CustomerName}}
Hi {{.CustomerName}},
{{end}}
{{.Intro}}
{{if .Items}}
{{range .Items}}- {{.Name}} — {{.Price}}
{{end}}{{end}}
Total: {{.Total}}

{{.Button}}: {{.RecoveryURL}}

Your cart is reserved for the next {{.ExpiresIn}}.

Sent by {{.FunnelName}}
`
