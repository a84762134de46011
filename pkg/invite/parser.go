// parser.go — Sample configuration and document for invite init.
package invite

// SampleTemplateName is the blank template written by invite init.
const SampleTemplateName = "template.png"

// GetExampleFiles returns a starter .env and invitation.json for invite init.
func GetExampleFiles() (envFile, documentJSON string) {
	envFile = `# Shared layout for every invitation.
TEMPLATE_IMAGE=` + SampleTemplateName + `
OUTPUT_IMAGE=invite.png
DPI=300

# Leave empty to use the built-in font.
FONT_TITLE=
FONT_BODY=
FONT_HOOK=

TITLE_SIZE=120
BODY_SIZE=52
SMALL_SIZE=44
HOOK_SIZE=34
RSVP_SIZE=

Y_INTRO=780
Y_TITLE=900
Y_DETAILS=1320
Y_MESSAGE=1840
Y_SIGN=2320
Y_RSVP=3000

LINE_WIDTH=900
LINE_THICKNESS=2
LINE_COLOR=180,180,180
HOOK_CHAR=❦
HOOK_GAP=22

SMALL_DIVIDER_WIDTH=150
SMALL_DIVIDER_LINE_1_Y=1130
SMALL_DIVIDER_LINE_2_Y=

DETAILS_DIVIDER_LINE_1_Y=1700
DETAILS_DIVIDER_LINE_2_Y=

MESSAGE_DIVIDER_LINE_1_Y=2180
MESSAGE_DIVIDER_LINE_2_Y=

# Mail-out (invite send).
SENDER=
SUBJECT=Invitation til konfirmation
INV_NAME=Anna
INV_DATE=Søndag den 3. maj
INV_DEADLINE=1. april
INV_SIGNOFF=Anna og familien

TO_CHURCH=
PREHEADER_1=Vi ses i kirken
INV_TIME_1=Kl. 14.00
INV_ADDRESS_1=
IMAGE_PATH_1=invitation-church.png

TO_HOME=
PREHEADER_2=Vi ses derhjemme
INV_TIME_2=Kl. 16.00
INV_ADDRESS_2=
IMAGE_PATH_2=invitation-home.png
`

	documentJSON = `{
  "INTRO_TEXT": "Du inviteres til",
  "TITLE_LINE_1": "Annas",
  "TITLE_LINE_2": "konfirmation",
  "DETAIL_LINE_1": "Søndag den 3. maj",
  "DETAIL_LINE_2": "Kl. 16.00",
  "DETAIL_LINE_3": "",
  "MESSAGE_LINE_1": "Vi håber, at I vil fejre dagen",
  "MESSAGE_LINE_2": "sammen med os",
  "SIGN_LINE_1": "Kærlig hilsen",
  "SIGN_LINE_2": "Anna",
  "RSVP_TEXT": "Tilmelding senest 1. april",
  "LAYOUT": {
    "Y_DETAILS": 1340
  }
}
`
	return
}
