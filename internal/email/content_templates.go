package email

// cartAbandonmentContentTemplate is the content section for cart abandonment emails
const cartAbandonmentContentTemplate = `
<div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #0F766E; margin: 0; font-size: 26px;">{{.Headline}}</h1>
    {{if .CustomerName}}<p style="font-size: 16px; color: #666; margin: 10px 0;">Hi {{.CustomerName}},</p>{{end}}
    <p style="font-size: 16px; color: #666; margin: 10px 0;">{{.Intro}}</p>
</div>

{{if .Items}}
<table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <tbody>
        {{range .Items}}
        <tr style="border-bottom: 1px solid #e5e7eb;">
            <td style="padding: 12px;">{{.Name}} — {{.Price}}</td>
        </tr>
        {{end}}
    </tbody>
</table>
{{end}}

<div style="padding: 15px 12px; margin-top: 10px; border-top: 2px solid #0F766E; font-size: 18px; font-weight: bold; color: #0F766E;">
    Total: {{.Total}}
</div>

<div style="text-align: center; margin: 30px 0;">
    <a href="{{.RecoveryURL}}" style="display: inline-block; padding: 14px 32px; background-color: #0F766E; color: white; text-decoration: none; border-radius: 6px; font-weight: 600;">{{.Button}}</a>
</div>

{{if .QRCodeURL}}
<div style="text-align: center; margin: 20px 0;">
    <img src="{{.QRCodeURL}}" alt="Scan to open your cart" width="160" height="160" />
    <p style="font-size: 12px; color: #999; margin: 5px 0;">On your phone? Scan to open your cart.</p>
</div>
{{end}}

<div style="background-color: #f0fdfa; padding: 15px 20px; border-radius: 8px; border-left: 4px solid #0F766E; margin: 25px 0;">
    <p style="margin: 0;">Your cart is reserved for the next {{.ExpiresIn}}.</p>
</div>

<p style="text-align: center; color: #777; font-size: 14px;">Sent by {{.FunnelName}}</p>
`
