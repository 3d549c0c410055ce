package cli

const helpText = `Available commands:

Contacts:
  add <name> [phone] [email] [address]   - Add a contact or supplement it
  change <name> phone <old> <new>        - Change a phone number
  delete-contact <name>                  - Delete a contact
  find-contact <query>                   - Search by name/phone/email/address
  phone <name>                           - Show the contact's phones
  all                                    - Show all contacts

Email:
  add-email <name> <email>               - Set an email
  change <name> email <new_email>        - Change the email

Addresses:
  add-address <name> <address>           - Set an address
  change <name> address <new address>    - Change the address

Birthdays:
  add-birthday <name> <DD.MM.YYYY>       - Set a birthday
  show-birthday <name>                   - Show a birthday
  birthdays [days]                       - Upcoming birthdays in the next N days

Notes:
  add-note <text>                        - Add a note (#words become tags)
  show-notes                             - Show all notes
  find-notes <query>                     - Search notes by text or tag
  edit-note <ID> <new text>              - Edit a note
  delete-note <ID>                       - Delete a note

System:
  help                                   - Show this menu
  exit / close                           - Save and quit`
