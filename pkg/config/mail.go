// mail.go — Settings for the invitation mail-out.
package config

// Mail holds the message text and the two recipient groups. Each group has
// its own preheader, time, address and image.
type Mail struct {
	Sender    string `env:"SENDER"`
	Subject   string `env:"SUBJECT" envDefault:"Invitation til konfirmation"`
	HTMLTitle string `env:"HTML_TITLE"`

	Name     string `env:"INV_NAME"`
	Date     string `env:"INV_DATE"`
	Deadline string `env:"INV_DEADLINE"`
	Signoff  string `env:"INV_SIGNOFF"`

	ToChurch   Recipients `env:"TO_CHURCH"`
	Preheader1 string     `env:"PREHEADER_1"`
	Time1      string     `env:"INV_TIME_1" envDefault:"Kl. 14.00"`
	Address1   string     `env:"INV_ADDRESS_1"`
	Image1     string     `env:"IMAGE_PATH_1"`

	ToHome     Recipients `env:"TO_HOME"`
	Preheader2 string     `env:"PREHEADER_2"`
	Time2      string     `env:"INV_TIME_2" envDefault:"Kl. 16.00"`
	Address2   string     `env:"INV_ADDRESS_2"`
	Image2     string     `env:"IMAGE_PATH_2"`

	Credentials string `env:"GMAIL_CREDENTIALS" envDefault:"credentials.json"`
	TokenFile   string `env:"GMAIL_TOKEN" envDefault:"token.json"`
}

// Variant is one recipient group with its own details and image.
type Variant struct {
	Label      string
	Recipients Recipients
	Preheader  string
	Time       string
	Address    string
	ImagePath  string
}

// Variants returns the church and home groups in send order.
func (m Mail) Variants() []Variant {
	return []Variant{
		{
			Label:      "CHURCH",
			Recipients: m.ToChurch,
			Preheader:  m.Preheader1,
			Time:       m.Time1,
			Address:    m.Address1,
			ImagePath:  m.Image1,
		},
		{
			Label:      "HOME",
			Recipients: m.ToHome,
			Preheader:  m.Preheader2,
			Time:       m.Time2,
			Address:    m.Address2,
			ImagePath:  m.Image2,
		},
	}
}
