package mailer

const (
	templateContactHTML  = "contact.mjml"
	templateContactText  = "contact.txt"
	templateLiveChatHTML = "livechat.mjml"
	templateLiveChatText = "livechat.txt"
)

const emailHead = `<mj-head>
    <mj-attributes>
      <mj-all font-family="Helvetica, Arial, sans-serif" />
      <mj-text font-size="15px" line-height="22px" color="#1f2937" />
    </mj-attributes>
  </mj-head>`

var contactMJML = `<mjml>
  ` + emailHead + `
  <mj-body background-color="#f3f4f6">
    <mj-section background-color="#111827" padding="20px">
      <mj-column>
        <mj-text color="#ffffff" font-size="20px" font-weight="bold">New contact message</mj-text>
      </mj-column>
    </mj-section>
    <mj-section background-color="#ffffff" padding="24px">
      <mj-column>
        <mj-text><strong>From:</strong> {{ name | escape }} &lt;{{ email | escape }}&gt;</mj-text>
        {% if subject != "" %}<mj-text><strong>Subject:</strong> {{ subject | escape }}</mj-text>{% endif %}
        <mj-divider border-color="#e5e7eb" border-width="1px" />
        <mj-text>{{ message | escape | newline_to_br }}</mj-text>
        <mj-text font-size="12px" color="#6b7280">Received {{ received_at }}</mj-text>
        {% if dashboard_url != "" %}<mj-button background-color="#2563eb" href="{{ dashboard_url }}">Open messages</mj-button>{% endif %}
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

const contactText = `New contact message

From: {{ name }} <{{ email }}>
{% if subject != "" %}Subject: {{ subject }}
{% endif %}
{{ message }}

Received {{ received_at }}
{% if dashboard_url != "" %}Open messages: {{ dashboard_url }}{% endif %}`

var liveChatMJML = `<mjml>
  ` + emailHead + `
  <mj-body background-color="#f3f4f6">
    <mj-section background-color="#111827" padding="20px">
      <mj-column>
        <mj-text color="#ffffff" font-size="20px" font-weight="bold">A visitor is waiting in live chat</mj-text>
      </mj-column>
    </mj-section>
    <mj-section background-color="#ffffff" padding="24px">
      <mj-column>
        <mj-text><strong>{{ sender_name | escape }}</strong>{% if sender_email != "" %} ({{ sender_email | escape }}){% endif %} wrote:</mj-text>
        <mj-text>{{ message | escape | newline_to_br }}</mj-text>
        <mj-text font-size="12px" color="#6b7280">Sent {{ received_at }}</mj-text>
        {% if dashboard_url != "" %}<mj-button background-color="#2563eb" href="{{ dashboard_url }}">Open live chat</mj-button>{% endif %}
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

const liveChatText = `A visitor is waiting in live chat

{{ sender_name }}{% if sender_email != "" %} ({{ sender_email }}){% endif %} wrote:

{{ message }}

Sent {{ received_at }}
{% if dashboard_url != "" %}Open live chat: {{ dashboard_url }}{% endif %}`
